package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxFieldLength is the maximum number of characters (code points) allowed in
// a card's word or translation.
const MaxFieldLength = 100

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a persisted card has no ID.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardWordEmpty is returned when a card's word is empty.
	ErrCardWordEmpty = errors.New("card word cannot be empty")

	// ErrCardTranslationEmpty is returned when a card's translation is empty.
	ErrCardTranslationEmpty = errors.New("card translation cannot be empty")

	// ErrCardFieldTooLong is returned when the word or translation exceeds MaxFieldLength.
	ErrCardFieldTooLong = errors.New("card field is too long")
)

// Card represents a single flashcard: a word, its translation and an optional
// image reference. The ID is assigned by the store when the card is created.
type Card struct {
	ID          uuid.UUID `json:"id"`
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCard builds an unsaved Card from already validated form values.
// The ID stays uuid.Nil until a store persists the card.
func NewCard(word, translation, image string) (*Card, error) {
	card := &Card{
		Word:        word,
		Translation: translation,
		Image:       image,
	}

	if err := card.ValidateContent(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks that a persisted Card holds valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}
	return c.ValidateContent()
}

// ValidateContent checks the user-editable fields, ignoring the ID.
func (c *Card) ValidateContent() error {
	if c.Word == "" {
		return ErrCardWordEmpty
	}
	if c.Translation == "" {
		return ErrCardTranslationEmpty
	}
	if utf8.RuneCountInString(c.Word) > MaxFieldLength ||
		utf8.RuneCountInString(c.Translation) > MaxFieldLength {
		return ErrCardFieldTooLong
	}
	return nil
}

// HasImage reports whether the card references an image.
func (c *Card) HasImage() bool {
	return c.Image != ""
}

// Replace overwrites the editable fields of the card. The ID and creation time
// are preserved; an empty image clears the previous one.
// Returns an error and leaves the card untouched if the new values are invalid.
func (c *Card) Replace(word, translation, image string) error {
	next := *c
	next.Word = word
	next.Translation = translation
	next.Image = image

	if err := next.ValidateContent(); err != nil {
		return err
	}

	c.Word = word
	c.Translation = translation
	c.Image = image
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// String returns the card's word, which is how cards are shown in lists.
func (c *Card) String() string {
	return c.Word
}
