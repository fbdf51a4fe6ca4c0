package api

import (
	"time"

	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/service"
)

// CardRequest is the payload for creating or editing a card.
// Word and translation rules are enforced by the card service so that
// every rejected field is reported together.
type CardRequest struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Image       string `json:"image" validate:"omitempty,max=255"`
}

func (req CardRequest) toInput() service.CardInput {
	return service.CardInput{
		Word:        req.Word,
		Translation: req.Translation,
		Image:       req.Image,
	}
}

// CardResponse represents the response data for a card
type CardResponse struct {
	ID          string    `json:"id"`
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Image       string    `json:"image,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeleteConfirmationResponse is returned by the first phase of a delete.
type DeleteConfirmationResponse struct {
	Card        CardResponse `json:"card"`
	ConfirmPath string       `json:"confirm_path"`
}

// TrainCardResponse wraps the card presented for training; Card is null
// when there are no cards.
type TrainCardResponse struct {
	Card *CardResponse `json:"card"`
}

// AnswerRequest is the payload for submitting a training answer.
type AnswerRequest struct {
	Answer  string `json:"answer"`
	Correct string `json:"correct" validate:"max=100"`
}

// EvaluationResponse describes the verdict for one answer.
type EvaluationResponse struct {
	Outcome string `json:"outcome"`
	Correct string `json:"correct"`
	Message string `json:"message"`
}

// AnswerResponse carries the verdict and the next card to ask.
type AnswerResponse struct {
	Result EvaluationResponse `json:"result"`
	Card   *CardResponse      `json:"card"`
}

// ImageUploadResponse is returned after a successful image upload.
type ImageUploadResponse struct {
	Image string `json:"image"`
	URL   string `json:"url"`
}

// cardPresenter renders cards, resolving image references to URLs under mediaPrefix.
type cardPresenter struct {
	mediaPrefix string
}

func (p cardPresenter) card(card *domain.Card) CardResponse {
	resp := CardResponse{
		ID:          card.ID.String(),
		Word:        card.Word,
		Translation: card.Translation,
		Image:       card.Image,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
	if card.HasImage() {
		resp.ImageURL = p.imageURL(card.Image)
	}
	return resp
}

func (p cardPresenter) cards(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, p.card(c))
	}
	return out
}

func (p cardPresenter) optionalCard(card *domain.Card) *CardResponse {
	if card == nil {
		return nil
	}
	resp := p.card(card)
	return &resp
}

func (p cardPresenter) imageURL(image string) string {
	prefix := p.mediaPrefix
	if prefix == "" {
		prefix = "/media/"
	}
	if prefix[len(prefix)-1] != '/' {
		prefix += "/"
	}
	return prefix + image
}

func evaluationToResponse(e domain.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		Outcome: string(e.Outcome),
		Correct: e.Correct,
		Message: e.Message(),
	}
}
