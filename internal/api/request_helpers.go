package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/api/shared"
	"github.com/phrazzld/wordcards/internal/domain"
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// decodeAndValidate reads a JSON body into v and applies its validate tags.
// Errors are wrapped with domain.ErrInvalidFormat so they map to 400.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
	}
	if err := shared.ValidateRequest(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
	}
	return nil
}
