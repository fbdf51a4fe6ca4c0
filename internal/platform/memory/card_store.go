package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/store"
)

// CardStore keeps cards in a map guarded by a RWMutex. Cards are copied on
// the way in and out, so callers never share memory with the store.
type CardStore struct {
	mu     sync.RWMutex
	cards  map[uuid.UUID]domain.Card
	now    func() time.Time
	logger *slog.Logger
}

var _ store.CardStore = (*CardStore)(nil)

// NewCardStore creates an empty in-memory card store.
func NewCardStore(logger *slog.Logger) *CardStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardStore{
		cards:  make(map[uuid.UUID]domain.Card),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.With(slog.String("component", "memory_card_store")),
	}
}

// Create implements store.CardStore.Create.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := card.ValidateContent(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	card.ID = uuid.New()
	card.CreatedAt = now
	card.UpdatedAt = now
	s.cards[card.ID] = *card

	logger.FromContextOrDefault(ctx, s.logger).
		Debug("card created", slog.String("card_id", card.ID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID.
func (s *CardStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return &card, nil
}

// Update implements store.CardStore.Update.
func (s *CardStore) Update(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.cards[card.ID]
	if !ok {
		return store.ErrCardNotFound
	}

	card.CreatedAt = existing.CreatedAt
	card.UpdatedAt = s.now()
	s.cards[card.ID] = *card

	logger.FromContextOrDefault(ctx, s.logger).
		Debug("card updated", slog.String("card_id", card.ID.String()))
	return nil
}

// Delete implements store.CardStore.Delete.
func (s *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(s.cards, id)

	logger.FromContextOrDefault(ctx, s.logger).
		Debug("card deleted", slog.String("card_id", id.String()))
	return nil
}

// List implements store.CardStore.List. Cards are ordered by creation time
// to keep output stable between calls.
func (s *CardStore) List(_ context.Context) ([]*domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]*domain.Card, 0, len(s.cards))
	for _, card := range s.cards {
		c := card
		cards = append(cards, &c)
	}

	sort.Slice(cards, func(i, j int) bool {
		if cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].ID.String() < cards[j].ID.String()
		}
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})

	return cards, nil
}

// CountByImage implements store.CardStore.CountByImage.
func (s *CardStore) CountByImage(_ context.Context, image string) (int, error) {
	if image == "" {
		return 0, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, card := range s.cards {
		if card.Image == image {
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored cards.
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
