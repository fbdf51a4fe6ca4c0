package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewCardEvent(t *testing.T) {
	card := testCard()
	event := NewCardEvent(CardCreated, card)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, CardCreated, event.Type)
	assert.Equal(t, card.ID, event.CardID)
	assert.Equal(t, card.Image, event.Image)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
}

func TestCardEvent_ImageReplaced(t *testing.T) {
	tests := []struct {
		name  string
		event CardEvent
		want  bool
	}{
		{"cleared", CardEvent{Type: CardUpdated, PreviousImage: "a.png"}, true},
		{"swapped", CardEvent{Type: CardUpdated, PreviousImage: "a.png", Image: "b.png"}, true},
		{"kept", CardEvent{Type: CardUpdated, PreviousImage: "a.png", Image: "a.png"}, false},
		{"none_before", CardEvent{Type: CardUpdated, Image: "b.png"}, false},
		{"not_update", CardEvent{Type: CardDeleted, PreviousImage: "a.png"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.ImageReplaced())
		})
	}
}
