package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
)

// MockCardStore implements store.CardStore for testing
type MockCardStore struct {
	CreateFn  func(ctx context.Context, card *domain.Card) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	UpdateFn  func(ctx context.Context, card *domain.Card) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	ListFn    func(ctx context.Context) ([]*domain.Card, error)

	CountByImageFn func(ctx context.Context, image string) (int, error)

	// Default return values
	Card         *domain.Card
	Cards        []*domain.Card
	DefaultError error

	// Calls counts every invoked method by name.
	Calls map[string]int
}

func (m *MockCardStore) record(name string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[name]++
}

// Create implements the CardStore.Create method
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	if m.DefaultError == nil && card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	return m.DefaultError
}

// GetByID implements the CardStore.GetByID method
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Card, m.DefaultError
}

// Update implements the CardStore.Update method
func (m *MockCardStore) Update(ctx context.Context, card *domain.Card) error {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, card)
	}
	return m.DefaultError
}

// Delete implements the CardStore.Delete method
func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}

// List implements the CardStore.List method
func (m *MockCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Cards, m.DefaultError
}

// CountByImage implements the CardStore.CountByImage method.
// Without CountByImageFn it counts matching entries in Cards.
func (m *MockCardStore) CountByImage(ctx context.Context, image string) (int, error) {
	m.record("CountByImage")
	if m.CountByImageFn != nil {
		return m.CountByImageFn(ctx, image)
	}
	n := 0
	for _, card := range m.Cards {
		if card.Image == image {
			n++
		}
	}
	return n, m.DefaultError
}
