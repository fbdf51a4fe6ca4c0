package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
)

// Card event types.
const (
	CardCreated = "card.created"
	CardUpdated = "card.updated"
	CardDeleted = "card.deleted"
)

// CardEvent describes a change to a card after it has been persisted.
type CardEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of CardCreated, CardUpdated or CardDeleted
	Type string `json:"type"`

	CardID uuid.UUID `json:"card_id"`

	// Image is the card's image after the change. For deletions it is the
	// image the removed card referenced.
	Image string `json:"image,omitempty"`

	// PreviousImage is set on updates to the image referenced before the edit.
	PreviousImage string `json:"previous_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewCardEvent creates an event of the given type for card.
func NewCardEvent(eventType string, card *domain.Card) *CardEvent {
	return &CardEvent{
		ID:        uuid.New(),
		Type:      eventType,
		CardID:    card.ID,
		Image:     card.Image,
		CreatedAt: time.Now().UTC(),
	}
}

// ImageReplaced reports whether an update event dropped or swapped the image.
func (e *CardEvent) ImageReplaced() bool {
	return e.Type == CardUpdated && e.PreviousImage != "" && e.PreviousImage != e.Image
}

// EventHandler defines an interface for components that react to card events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *CardEvent) error
}

// HandlerFunc adapts a plain function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *CardEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *CardEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *CardEvent) error
}
