package mocks

import (
	"context"

	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/service"
)

// MockTrainingService implements service.TrainingService for testing
type MockTrainingService struct {
	PresentFn  func(ctx context.Context) (*domain.Card, error)
	EvaluateFn func(answer, correct string) domain.Evaluation

	Card         *domain.Card
	DefaultError error
}

var _ service.TrainingService = (*MockTrainingService)(nil)

// Present implements the TrainingService.Present method
func (m *MockTrainingService) Present(ctx context.Context) (*domain.Card, error) {
	if m.PresentFn != nil {
		return m.PresentFn(ctx)
	}
	return m.Card, m.DefaultError
}

// Evaluate implements the TrainingService.Evaluate method.
// Without EvaluateFn it applies the real evaluation rules.
func (m *MockTrainingService) Evaluate(answer, correct string) domain.Evaluation {
	if m.EvaluateFn != nil {
		return m.EvaluateFn(answer, correct)
	}
	return domain.EvaluateAnswer(answer, correct)
}
