package service

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/store"
)

// TrainingService quizzes the learner on stored cards.
type TrainingService interface {
	// Present picks a card uniformly at random.
	// It returns nil and no error when there are no cards.
	Present(ctx context.Context) (*domain.Card, error)

	// Evaluate judges an answer against the expected value.
	Evaluate(answer, correct string) domain.Evaluation
}

// IntN returns a uniformly distributed integer in [0, n).
type IntN func(n int) int

// TrainingOption configures a TrainingService.
type TrainingOption func(*trainingServiceImpl)

// WithRandom replaces the random source used by Present.
func WithRandom(intN IntN) TrainingOption {
	return func(s *trainingServiceImpl) {
		if intN != nil {
			s.intN = intN
		}
	}
}

type trainingServiceImpl struct {
	cards  store.CardStore
	intN   IntN
	logger *slog.Logger
}

// NewTrainingService creates a new TrainingService reading cards from cards.
func NewTrainingService(
	cards store.CardStore,
	logger *slog.Logger,
	opts ...TrainingOption,
) (TrainingService, error) {
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &trainingServiceImpl{
		cards:  cards,
		intN:   rand.Intn,
		logger: logger.With(slog.String("component", "training_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Present implements TrainingService.Present
func (s *trainingServiceImpl) Present(ctx context.Context) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.cards.List(ctx)
	if err != nil {
		log.Error("failed to list cards for training", slog.String("error", err.Error()))
		return nil, NewCardServiceError("present", "failed to list cards", err)
	}

	if len(cards) == 0 {
		log.Debug("no cards to present")
		return nil, nil
	}

	card := cards[s.intN(len(cards))]
	log.Debug("presenting card", slog.String("card_id", card.ID.String()))
	return card, nil
}

// Evaluate implements TrainingService.Evaluate
func (s *trainingServiceImpl) Evaluate(answer, correct string) domain.Evaluation {
	return domain.EvaluateAnswer(answer, correct)
}
