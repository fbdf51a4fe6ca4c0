package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/wordcards/internal/api/shared"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/service"
)

// TrainHandler serves the training quiz.
type TrainHandler struct {
	training  service.TrainingService
	presenter cardPresenter
	logger    *slog.Logger
}

// NewTrainHandler creates a new TrainHandler.
func NewTrainHandler(
	training service.TrainingService,
	mediaPrefix string,
	logger *slog.Logger,
) *TrainHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TrainHandler")
	}

	return &TrainHandler{
		training:  training,
		presenter: cardPresenter{mediaPrefix: mediaPrefix},
		logger:    logger.With(slog.String("component", "train_handler")),
	}
}

// Present handles GET /api/train requests
// It responds with a random card, or a null card when there are none.
func (h *TrainHandler) Present(w http.ResponseWriter, r *http.Request) {
	card, err := h.training.Present(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to pick a card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TrainCardResponse{Card: h.presenter.optionalCard(card)})
}

// Answer handles POST /api/train requests
// It evaluates the answer and returns the verdict together with the next card.
func (h *TrainHandler) Answer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnswerRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		log.Warn("invalid answer request", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	result := h.training.Evaluate(req.Answer, req.Correct)
	log.Debug("answer evaluated", slog.String("outcome", string(result.Outcome)))

	next, err := h.training.Present(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to pick a card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{
		Result: evaluationToResponse(result),
		Card:   h.presenter.optionalCard(next),
	})
}
