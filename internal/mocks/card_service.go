package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/service"
)

// MockCardService implements service.CardService for testing
type MockCardService struct {
	ListCardsFn     func(ctx context.Context) ([]*domain.Card, error)
	AddCardFn       func(ctx context.Context, input service.CardInput) (*domain.Card, error)
	GetCardFn       func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	EditCardFn      func(ctx context.Context, id uuid.UUID, input service.CardInput) (*domain.Card, error)
	RequestDeleteFn func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ConfirmDeleteFn func(ctx context.Context, id uuid.UUID) error
	ImportCardsFn   func(ctx context.Context, inputs []service.CardInput) (int, error)

	// Default return values
	Card         *domain.Card
	Cards        []*domain.Card
	DefaultError error
}

var _ service.CardService = (*MockCardService)(nil)

// ListCards implements the CardService.ListCards method
func (m *MockCardService) ListCards(ctx context.Context) ([]*domain.Card, error) {
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx)
	}
	return m.Cards, m.DefaultError
}

// AddCard implements the CardService.AddCard method
func (m *MockCardService) AddCard(ctx context.Context, input service.CardInput) (*domain.Card, error) {
	if m.AddCardFn != nil {
		return m.AddCardFn(ctx, input)
	}
	return m.Card, m.DefaultError
}

// GetCard implements the CardService.GetCard method
func (m *MockCardService) GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetCardFn != nil {
		return m.GetCardFn(ctx, id)
	}
	return m.Card, m.DefaultError
}

// EditCard implements the CardService.EditCard method
func (m *MockCardService) EditCard(
	ctx context.Context,
	id uuid.UUID,
	input service.CardInput,
) (*domain.Card, error) {
	if m.EditCardFn != nil {
		return m.EditCardFn(ctx, id, input)
	}
	return m.Card, m.DefaultError
}

// RequestDelete implements the CardService.RequestDelete method
func (m *MockCardService) RequestDelete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.RequestDeleteFn != nil {
		return m.RequestDeleteFn(ctx, id)
	}
	return m.Card, m.DefaultError
}

// ConfirmDelete implements the CardService.ConfirmDelete method
func (m *MockCardService) ConfirmDelete(ctx context.Context, id uuid.UUID) error {
	if m.ConfirmDeleteFn != nil {
		return m.ConfirmDeleteFn(ctx, id)
	}
	return m.DefaultError
}

// ImportCards implements the CardService.ImportCards method
func (m *MockCardService) ImportCards(ctx context.Context, inputs []service.CardInput) (int, error) {
	if m.ImportCardsFn != nil {
		return m.ImportCardsFn(ctx, inputs)
	}
	if m.DefaultError != nil {
		return 0, m.DefaultError
	}
	return len(inputs), nil
}
