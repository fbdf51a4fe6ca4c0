package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/events"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/store"
)

// CardInput carries the user-submitted values for a card.
type CardInput struct {
	Word        string
	Translation string
	Image       string
}

// CardService provides card management operations.
type CardService interface {
	// ListCards returns every card in store order.
	ListCards(ctx context.Context) ([]*domain.Card, error)

	// AddCard validates input and creates a new card.
	// Returns domain.ValidationErrors without touching the store when input is invalid.
	AddCard(ctx context.Context, input CardInput) (*domain.Card, error)

	// GetCard retrieves a card by its ID.
	GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// EditCard replaces the word, translation and image of an existing card.
	// An empty image clears the card's image.
	EditCard(ctx context.Context, id uuid.UUID, input CardInput) (*domain.Card, error)

	// RequestDelete is the first phase of deletion: it returns the card that
	// would be removed and changes nothing.
	RequestDelete(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ConfirmDelete is the second phase of deletion and removes the card.
	ConfirmDelete(ctx context.Context, id uuid.UUID) error

	// ImportCards validates every input and then creates all of them.
	// When the store supports transactions the import is all-or-nothing.
	ImportCards(ctx context.Context, inputs []CardInput) (int, error)
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	cards   store.CardStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewCardService creates a new CardService.
// It returns an error if the card store is nil. A nil emitter disables events.
func NewCardService(
	cards store.CardStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (CardService, error) {
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		cards:   cards,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "card_service")),
	}, nil
}

// ListCards implements CardService.ListCards
func (s *cardServiceImpl) ListCards(ctx context.Context) ([]*domain.Card, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list cards", slog.String("error", err.Error()))
		return nil, NewCardServiceError("list_cards", "failed to list cards", err)
	}
	return cards, nil
}

// AddCard implements CardService.AddCard
func (s *cardServiceImpl) AddCard(ctx context.Context, input CardInput) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateCardForm(input.Word, input.Translation); err != nil {
		log.Debug("card form rejected", slog.String("error", err.Error()))
		return nil, err
	}

	card, err := domain.NewCard(input.Word, input.Translation, input.Image)
	if err != nil {
		return nil, NewCardServiceError("add_card", "invalid card", err)
	}

	if err := s.cards.Create(ctx, card); err != nil {
		log.Error("failed to create card", slog.String("error", err.Error()))
		return nil, NewCardServiceError("add_card", "failed to save card", err)
	}

	log.Info("card added", slog.String("card_id", card.ID.String()))
	s.emit(ctx, events.NewCardEvent(events.CardCreated, card))
	return card, nil
}

// GetCard implements CardService.GetCard
func (s *cardServiceImpl) GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return s.getCard(ctx, "get_card", id)
}

// EditCard implements CardService.EditCard
// The card must exist before its input is validated; a missing ID is never created.
func (s *cardServiceImpl) EditCard(
	ctx context.Context,
	id uuid.UUID,
	input CardInput,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.getCard(ctx, "edit_card", id)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateCardForm(input.Word, input.Translation); err != nil {
		log.Debug("card form rejected",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, err
	}

	previousImage := card.Image
	if err := card.Replace(input.Word, input.Translation, input.Image); err != nil {
		return nil, NewCardServiceError("edit_card", "invalid card", err)
	}

	if err := s.cards.Update(ctx, card); err != nil {
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		if store.IsNotFoundError(err) {
			return nil, NewCardServiceError("edit_card", "card not found", store.ErrCardNotFound)
		}
		return nil, NewCardServiceError("edit_card", "failed to save card", err)
	}

	log.Info("card edited", slog.String("card_id", id.String()))

	event := events.NewCardEvent(events.CardUpdated, card)
	event.PreviousImage = previousImage
	s.emit(ctx, event)
	return card, nil
}

// RequestDelete implements CardService.RequestDelete
func (s *cardServiceImpl) RequestDelete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return s.getCard(ctx, "request_delete", id)
}

// ConfirmDelete implements CardService.ConfirmDelete
func (s *cardServiceImpl) ConfirmDelete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.getCard(ctx, "confirm_delete", id)
	if err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		if store.IsNotFoundError(err) {
			return NewCardServiceError("confirm_delete", "card not found", store.ErrCardNotFound)
		}
		return NewCardServiceError("confirm_delete", "failed to delete card", err)
	}

	log.Info("card deleted", slog.String("card_id", id.String()))
	s.emit(ctx, events.NewCardEvent(events.CardDeleted, card))
	return nil
}

// ImportCards implements CardService.ImportCards
func (s *cardServiceImpl) ImportCards(ctx context.Context, inputs []CardInput) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(inputs) == 0 {
		log.Debug("no cards to import")
		return 0, nil
	}

	cards, err := validateImport(inputs)
	if err != nil {
		log.Debug("import rejected", slog.String("error", err.Error()))
		return 0, err
	}

	if txStore, ok := s.cards.(store.TxCardStore); ok {
		err = store.RunInTransaction(ctx, txStore.DB(), func(ctx context.Context, tx *sql.Tx) error {
			return createAll(ctx, txStore.WithTx(tx), cards)
		})
	} else {
		err = createAll(ctx, s.cards, cards)
	}
	if err != nil {
		log.Error("failed to import cards",
			slog.String("error", err.Error()),
			slog.Int("card_count", len(cards)))
		return 0, NewCardServiceError("import_cards", "failed to save cards", err)
	}

	for _, card := range cards {
		s.emit(ctx, events.NewCardEvent(events.CardCreated, card))
	}

	log.Info("cards imported", slog.Int("card_count", len(cards)))
	return len(cards), nil
}

// validateImport checks every input and reports problems with 1-based
// field paths such as "cards[3].word".
func validateImport(inputs []CardInput) ([]*domain.Card, error) {
	var errs domain.ValidationErrors
	cards := make([]*domain.Card, 0, len(inputs))

	for i, input := range inputs {
		if err := domain.ValidateCardForm(input.Word, input.Translation); err != nil {
			fieldErrs, _ := domain.AsValidationErrors(err)
			for _, fe := range fieldErrs {
				errs = append(errs, domain.NewValidationError(
					fmt.Sprintf("cards[%d].%s", i+1, fe.Field),
					fe.Message,
					fe.Err,
				))
			}
			continue
		}

		card, err := domain.NewCard(input.Word, input.Translation, input.Image)
		if err != nil {
			errs = append(errs, domain.NewValidationError(
				fmt.Sprintf("cards[%d]", i+1),
				err.Error(),
				err,
			))
			continue
		}
		cards = append(cards, card)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cards, nil
}

func createAll(ctx context.Context, cards store.CardStore, batch []*domain.Card) error {
	for _, card := range batch {
		if err := cards.Create(ctx, card); err != nil {
			return err
		}
	}
	return nil
}

func (s *cardServiceImpl) getCard(ctx context.Context, op string, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("card not found", slog.String("card_id", id.String()))
			return nil, NewCardServiceError(op, "card not found", store.ErrCardNotFound)
		}
		log.Error("failed to retrieve card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, NewCardServiceError(op, "failed to retrieve card", err)
	}

	return card, nil
}

// emit publishes event. The card change has already been persisted, so
// handler failures are logged and not returned.
func (s *cardServiceImpl) emit(ctx context.Context, event *events.CardEvent) {
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("card event handler failed",
			slog.String("error", err.Error()),
			slog.String("event_type", event.Type),
			slog.String("card_id", event.CardID.String()))
	}
}
