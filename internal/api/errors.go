package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/wordcards/internal/api/shared"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/platform/media"
	"github.com/phrazzld/wordcards/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, media.ErrTooLarge),
		errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, media.ErrNotImage),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	case store.IsUnavailableError(err):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	case errors.Is(err, media.ErrTooLarge), errors.As(err, &maxBytesErr):
		return "File is too large"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid card ID"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid request format"
	case errors.Is(err, media.ErrNotImage):
		return "File is not a supported image"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return "Validation failed"
	case store.IsUnavailableError(err):
		return "Service temporarily unavailable"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Validation errors carrying
// field details become a 422 listing the fields; everything else is mapped
// through MapErrorToStatusCode. fallbackMessage replaces the generic message
// for 500 responses when it is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	if fieldErrs, ok := domain.AsValidationErrors(err); ok && !isRequestShapeError(err) {
		shared.RespondWithValidationErrors(w, r, fieldErrs)
		return
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// isRequestShapeError reports errors about the request itself, such as a
// malformed path ID, which are answered with 400 rather than 422.
func isRequestShapeError(err error) bool {
	return errors.Is(err, domain.ErrInvalidID) || errors.Is(err, domain.ErrInvalidFormat)
}
