package domain

import (
	"fmt"
	"unicode/utf8"
)

// Field names reported by ValidateCardForm.
const (
	FieldWord        = "word"
	FieldTranslation = "translation"
)

// ValidateCardForm checks raw user-submitted values for a card.
//
// Both fields are checked independently so that every problem is reported at
// once. Values are not trimmed: a whitespace-only word is not empty.
// Returns nil when the values are acceptable, otherwise ValidationErrors.
func ValidateCardForm(word, translation string) error {
	var errs ValidationErrors

	if e := checkField(FieldWord, word); e != nil {
		errs = append(errs, e)
	}
	if e := checkField(FieldTranslation, translation); e != nil {
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkField(field, value string) *ValidationError {
	if value == "" {
		return NewValidationError(field, fmt.Sprintf("%s field must not be empty", field), ErrValidation)
	}
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return NewValidationError(
			field,
			fmt.Sprintf("%s field must be at most %d characters", field, MaxFieldLength),
			ErrCardFieldTooLong,
		)
	}
	return nil
}
