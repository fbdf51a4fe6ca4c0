package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/wordcards/internal/api/shared"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/platform/logger"
)

// ImageFormField is the multipart field carrying the uploaded image.
const ImageFormField = "image"

// multipartOverhead allows for multipart boundaries and headers on top of
// the image size limit.
const multipartOverhead = 64 << 10

// ImageStore saves uploaded images.
type ImageStore interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	MaxBytes() int64
}

// ImageHandler accepts image uploads.
type ImageHandler struct {
	images    ImageStore
	presenter cardPresenter
	logger    *slog.Logger
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images ImageStore, mediaPrefix string, logger *slog.Logger) *ImageHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ImageHandler")
	}

	return &ImageHandler{
		images:    images,
		presenter: cardPresenter{mediaPrefix: mediaPrefix},
		logger:    logger.With(slog.String("component", "image_handler")),
	}
}

// Upload handles POST /api/images requests
// The returned image reference can be used as a card's image.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, h.images.MaxBytes()+multipartOverhead)

	file, _, err := r.FormFile(ImageFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if !errors.As(err, &maxBytesErr) {
			err = errors.Join(domain.ErrInvalidFormat, err)
		}
		log.Warn("invalid image upload", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}
	defer func() { _ = file.Close() }()

	name, err := h.images.Save(r.Context(), file)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save image")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ImageUploadResponse{
		Image: name,
		URL:   h.presenter.imageURL(name),
	})
}
