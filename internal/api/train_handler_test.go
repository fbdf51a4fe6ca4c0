package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/mocks"
	"github.com/phrazzld/wordcards/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainHandler_Present(t *testing.T) {
	t.Run("no_cards", func(t *testing.T) {
		router := newTestRouter(t, nil, &mocks.MockTrainingService{}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/train", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"card": null}`, rec.Body.String())
	})

	t.Run("random_card", func(t *testing.T) {
		card := &domain.Card{ID: uuid.New(), Word: "dog", Translation: "собака"}
		router := newTestRouter(t, nil, &mocks.MockTrainingService{Card: card}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/train", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[TrainCardResponse](t, rec)
		require.NotNil(t, resp.Card)
		assert.Equal(t, card.ID.String(), resp.Card.ID)
		assert.Equal(t, "dog", resp.Card.Word)
	})

	t.Run("store_unavailable", func(t *testing.T) {
		router := newTestRouter(t, nil, &mocks.MockTrainingService{DefaultError: store.ErrUnavailable}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/train", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestTrainHandler_Answer(t *testing.T) {
	next := &domain.Card{ID: uuid.New(), Word: "cat", Translation: "кошка"}
	var presented int
	training := &mocks.MockTrainingService{
		PresentFn: func(context.Context) (*domain.Card, error) {
			presented++
			return next, nil
		},
	}
	router := newTestRouter(t, nil, training, nil)

	tests := []struct {
		name    string
		req     AnswerRequest
		outcome string
		message string
	}{
		{
			name:    "correct_ignoring_case_and_space",
			req:     AnswerRequest{Answer: "  Собака ", Correct: "собака"},
			outcome: "correct",
			message: "✅ Правильно!",
		},
		{
			name:    "incorrect",
			req:     AnswerRequest{Answer: "кошка", Correct: "собака"},
			outcome: "incorrect",
			message: "❌ Неправильно. Правильный ответ: собака",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/train", tt.req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			resp := decodeBody[AnswerResponse](t, rec)
			assert.Equal(t, tt.outcome, resp.Result.Outcome)
			assert.Equal(t, tt.req.Correct, resp.Result.Correct)
			assert.Equal(t, tt.message, resp.Result.Message)
			require.NotNil(t, resp.Card)
			assert.Equal(t, next.ID.String(), resp.Card.ID)
		})
	}
	assert.Equal(t, 2, presented)

	rec := doJSON(t, router, http.MethodPost, "/api/train", "{")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
