package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCardForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		word        string
		translation string
		wantFields  []string
		wantMessage []string
	}{
		{
			name:        "valid values",
			word:        "dog",
			translation: "собака",
		},
		{
			name:        "empty word",
			word:        "",
			translation: "собака",
			wantFields:  []string{FieldWord},
			wantMessage: []string{"word field must not be empty"},
		},
		{
			name:        "empty translation",
			word:        "dog",
			translation: "",
			wantFields:  []string{FieldTranslation},
			wantMessage: []string{"translation field must not be empty"},
		},
		{
			name:        "both empty are reported together",
			word:        "",
			translation: "",
			wantFields:  []string{FieldWord, FieldTranslation},
			wantMessage: []string{
				"word field must not be empty",
				"translation field must not be empty",
			},
		},
		{
			name:        "whitespace-only word is not empty",
			word:        "   ",
			translation: "пробел",
		},
		{
			name:        "word too long",
			word:        strings.Repeat("a", MaxFieldLength+1),
			translation: "x",
			wantFields:  []string{FieldWord},
			wantMessage: []string{"word field must be at most 100 characters"},
		},
		{
			name:        "exactly max length",
			word:        strings.Repeat("a", MaxFieldLength),
			translation: strings.Repeat("б", MaxFieldLength),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCardForm(tc.word, tc.translation)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "expected ErrValidation category")

			list, ok := AsValidationErrors(err)
			require.True(t, ok, "expected ValidationErrors")
			assert.Equal(t, tc.wantFields, list.Fields())
			for i, msg := range tc.wantMessage {
				assert.Equal(t, msg, list[i].Message)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("word", "is required", nil)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "word: is required", err.Error())

	tooLong := NewValidationError("word", "too long", ErrCardFieldTooLong)
	assert.True(t, errors.Is(tooLong, ErrCardFieldTooLong))
}

func TestAsValidationErrors_NotValidation(t *testing.T) {
	t.Parallel()

	_, ok := AsValidationErrors(errors.New("boom"))
	assert.False(t, ok)
}
