package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/wordcards/internal/api/shared"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/service"
)

// CardHandler handles card management HTTP requests
type CardHandler struct {
	cardService service.CardService
	presenter   cardPresenter
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler. mediaPrefix is the URL prefix
// under which card images are served.
func NewCardHandler(
	cardService service.CardService,
	mediaPrefix string,
	logger *slog.Logger,
) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService: cardService,
		presenter:   cardPresenter{mediaPrefix: mediaPrefix},
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /api/cards requests
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list cards")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("listed cards", slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, h.presenter.cards(cards))
}

// CreateCard handles POST /api/cards requests
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CardRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		log.Warn("invalid card request", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardService.AddCard(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create card")
		return
	}

	log.Debug("card created", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, h.presenter.card(card))
}

// GetCard handles GET /api/cards/{id} requests
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardService.GetCard(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.presenter.card(card))
}

// EditCard handles PUT /api/cards/{id} requests
// The request replaces word, translation and image; an omitted image clears it.
func (h *CardHandler) EditCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CardRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		log.Warn("invalid card request", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardService.EditCard(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to edit card")
		return
	}

	log.Debug("card edited", slog.String("card_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, h.presenter.card(card))
}

// RequestDelete handles GET /api/cards/{id}/delete requests
// It shows the card that would be removed along with the path that confirms it.
func (h *CardHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.cardService.RequestDelete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteConfirmationResponse{
		Card:        h.presenter.card(card),
		ConfirmPath: fmt.Sprintf("/api/cards/%s/delete", card.ID),
	})
}

// ConfirmDelete handles POST /api/cards/{id}/delete requests
func (h *CardHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.cardService.ConfirmDelete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete card")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("card deleted", slog.String("card_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
