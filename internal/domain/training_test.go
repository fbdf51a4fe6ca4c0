package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answer  string
		correct string
		want    Outcome
	}{
		{"exact match", "cat", "cat", OutcomeCorrect},
		{"surrounding whitespace and case", " Cat ", "cat", OutcomeCorrect},
		{"expected value is normalized too", "cat", "  CAT\n", OutcomeCorrect},
		{"cyrillic case folding", "Собака", "собака", OutcomeCorrect},
		{"different word", "dog", "cat", OutcomeIncorrect},
		{"inner whitespace matters", "ca t", "cat", OutcomeIncorrect},
		{"both empty", "", "", OutcomeCorrect},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateAnswer(tc.answer, tc.correct)
			assert.Equal(t, tc.want, got.Outcome)
			assert.Equal(t, tc.correct, got.Correct, "correct value must not be normalized")
		})
	}
}

func TestEvaluationMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✅ Правильно!", EvaluateAnswer(" Cat ", "cat").Message())
	assert.Equal(t,
		"❌ Неправильно. Правильный ответ: Cat",
		EvaluateAnswer("dog", "Cat").Message(),
	)
}
