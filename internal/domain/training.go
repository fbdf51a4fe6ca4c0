package domain

import "strings"

// Outcome is the verdict for a submitted training answer.
type Outcome string

const (
	// OutcomeCorrect means the answer matched the expected value.
	OutcomeCorrect Outcome = "correct"

	// OutcomeIncorrect means the answer did not match.
	OutcomeIncorrect Outcome = "incorrect"
)

// Evaluation is the result of judging one answer.
// Correct always holds the expected value exactly as it was submitted.
type Evaluation struct {
	Outcome Outcome `json:"outcome"`
	Correct string  `json:"correct"`
}

// EvaluateAnswer compares answer with correct, ignoring surrounding
// whitespace and letter case.
func EvaluateAnswer(answer, correct string) Evaluation {
	outcome := OutcomeIncorrect
	if normalizeAnswer(answer) == normalizeAnswer(correct) {
		outcome = OutcomeCorrect
	}
	return Evaluation{
		Outcome: outcome,
		Correct: correct,
	}
}

// IsCorrect reports whether the evaluation succeeded.
func (e Evaluation) IsCorrect() bool {
	return e.Outcome == OutcomeCorrect
}

// Message renders the evaluation the way it is shown to the learner.
func (e Evaluation) Message() string {
	if e.IsCorrect() {
		return "✅ Правильно!"
	}
	return "❌ Неправильно. Правильный ответ: " + e.Correct
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
