package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/stretchr/testify/assert"
)

// recordingHandler remembers every event it receives.
type recordingHandler struct {
	mu     sync.Mutex
	events []*CardEvent
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *CardEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func testCard() *domain.Card {
	return &domain.Card{ID: uuid.New(), Word: "dog", Translation: "собака", Image: "images/dog.png"}
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no_handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		assert.NoError(t, emitter.EmitEvent(context.Background(), NewCardEvent(CardCreated, testCard())))
	})

	t.Run("all_handlers_receive_event", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		h1, h2 := &recordingHandler{}, &recordingHandler{}
		emitter.RegisterHandler(h1)
		emitter.RegisterHandler(h2)

		event := NewCardEvent(CardDeleted, testCard())
		assert.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, []*CardEvent{event}, h1.events)
		assert.Equal(t, []*CardEvent{event}, h2.events)
	})

	t.Run("failing_handler_does_not_stop_dispatch", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		failing := &recordingHandler{err: errors.New("handler error")}
		ok := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(ok)

		err := emitter.EmitEvent(context.Background(), NewCardEvent(CardUpdated, testCard()))
		assert.EqualError(t, err, "handler error")
		assert.Len(t, failing.events, 1)
		assert.Len(t, ok.events, 1)
	})

	t.Run("handler_func", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		var got string
		emitter.RegisterHandler(HandlerFunc(func(_ context.Context, e *CardEvent) error {
			got = e.Type
			return nil
		}))

		assert.NoError(t, emitter.EmitEvent(context.Background(), NewCardEvent(CardCreated, testCard())))
		assert.Equal(t, CardCreated, got)
	})
}

func TestNoopEmitter(t *testing.T) {
	assert.NoError(t, NoopEmitter{}.EmitEvent(context.Background(), nil))
}
