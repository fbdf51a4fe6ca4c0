package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/mocks"
	"github.com/phrazzld/wordcards/internal/platform/memory"
	"github.com/phrazzld/wordcards/internal/service"
	"github.com/phrazzld/wordcards/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingService_PresentEmptyStore(t *testing.T) {
	svc, err := service.NewTrainingService(memory.NewCardStore(nil), nil)
	require.NoError(t, err)

	card, err := svc.Present(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, card)
}

func TestTrainingService_PresentUsesRandomSource(t *testing.T) {
	ctx := context.Background()
	cards := memory.NewCardStore(nil)
	for _, w := range []string{"one", "two", "three"} {
		require.NoError(t, cards.Create(ctx, &domain.Card{Word: w, Translation: w}))
	}
	listed, err := cards.List(ctx)
	require.NoError(t, err)

	var gotN int
	svc, err := service.NewTrainingService(cards, nil, service.WithRandom(func(n int) int {
		gotN = n
		return 2
	}))
	require.NoError(t, err)

	card, err := svc.Present(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, gotN)
	assert.Equal(t, listed[2].ID, card.ID)
}

func TestTrainingService_PresentReturnsStoredCard(t *testing.T) {
	ctx := context.Background()
	cards := memory.NewCardStore(nil)
	require.NoError(t, cards.Create(ctx, &domain.Card{Word: "dog", Translation: "собака"}))
	require.NoError(t, cards.Create(ctx, &domain.Card{Word: "cat", Translation: "кошка"}))

	svc, err := service.NewTrainingService(cards, nil)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		card, err := svc.Present(ctx)
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Contains(t, []string{"dog", "cat"}, card.Word)
	}
}

func TestTrainingService_PresentStoreFailure(t *testing.T) {
	svc, err := service.NewTrainingService(&mocks.MockCardStore{DefaultError: store.ErrUnavailable}, nil)
	require.NoError(t, err)

	_, err = svc.Present(context.Background())
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestTrainingService_Evaluate(t *testing.T) {
	svc, err := service.NewTrainingService(memory.NewCardStore(nil), nil)
	require.NoError(t, err)

	tests := []struct {
		answer  string
		correct string
		want    domain.Outcome
	}{
		{"  Собака ", "собака", domain.OutcomeCorrect},
		{"DOG", "dog", domain.OutcomeCorrect},
		{"cat", "dog", domain.OutcomeIncorrect},
		{"", "", domain.OutcomeCorrect},
		{"", "dog", domain.OutcomeIncorrect},
	}

	for _, tt := range tests {
		got := svc.Evaluate(tt.answer, tt.correct)
		assert.Equal(t, tt.want, got.Outcome, "answer %q vs %q", tt.answer, tt.correct)
		assert.Equal(t, tt.correct, got.Correct)
	}
}

func TestNewTrainingService_NilStore(t *testing.T) {
	_, err := service.NewTrainingService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestFlashcardFlow walks through adding, training, editing and deleting a card.
func TestFlashcardFlow(t *testing.T) {
	ctx := context.Background()
	cards := memory.NewCardStore(nil)

	cardSvc, err := service.NewCardService(cards, nil, nil)
	require.NoError(t, err)
	trainSvc, err := service.NewTrainingService(cards, nil)
	require.NoError(t, err)

	card, err := cardSvc.AddCard(ctx, service.CardInput{Word: "dog", Translation: "собака"})
	require.NoError(t, err)

	presented, err := trainSvc.Present(ctx)
	require.NoError(t, err)
	require.NotNil(t, presented)
	assert.Equal(t, card.ID, presented.ID)

	result := trainSvc.Evaluate("  Собака ", presented.Translation)
	assert.True(t, result.IsCorrect())
	assert.Equal(t, "✅ Правильно!", result.Message())

	_, err = cardSvc.EditCard(ctx, card.ID, service.CardInput{Word: "dog", Translation: "пёс"})
	require.NoError(t, err)

	presented, err = trainSvc.Present(ctx)
	require.NoError(t, err)
	result = trainSvc.Evaluate("собака", presented.Translation)
	assert.False(t, result.IsCorrect())
	assert.Equal(t, "❌ Неправильно. Правильный ответ: пёс", result.Message())

	require.NoError(t, cardSvc.ConfirmDelete(ctx, card.ID))
	presented, err = trainSvc.Present(ctx)
	require.NoError(t, err)
	assert.Nil(t, presented)
}
