package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/spf13/afero"
)

// ImageDir is the directory, relative to the media root, that holds card images.
const ImageDir = "images"

var (
	// ErrNotImage is returned when uploaded content is not a supported image.
	ErrNotImage = errors.New("file is not a supported image")

	// ErrTooLarge is returned when an upload exceeds the configured limit.
	ErrTooLarge = errors.New("file is too large")

	// ErrInvalidName is returned for image references outside ImageDir.
	ErrInvalidName = errors.New("invalid image name")
)

var allowedTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/bmp",
}

// Store saves, removes and serves card images.
type Store struct {
	fs       afero.Fs
	maxBytes int64
	logger   *slog.Logger
}

// NewStore creates an image store rooted at fs. maxBytes bounds the size of a
// single upload.
func NewStore(fs afero.Fs, maxBytes int64, logger *slog.Logger) *Store {
	if fs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("fs cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fs:       fs,
		maxBytes: maxBytes,
		logger:   logger.With(slog.String("component", "media_store")),
	}
}

// NewDiskStore creates an image store under dir on the local disk.
func NewDiskStore(dir string, maxBytes int64, logger *slog.Logger) (*Store, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(path.Join(dir, ImageDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", dir, err)
	}
	return NewStore(afero.NewBasePathFs(osFs, dir), maxBytes, logger), nil
}

// MaxBytes returns the upload size limit.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save writes an uploaded image and returns its reference, for example
// "images/<uuid>.png". The reference is what cards store in their Image field.
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		log.Debug("rejected upload", slog.String("mime_type", mtype.String()))
		return "", fmt.Errorf("%w: %s", ErrNotImage, mtype.String())
	}

	if err := s.fs.MkdirAll(fsPath(ImageDir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	name := path.Join(ImageDir, uuid.NewString()+mtype.Extension())
	if err := afero.WriteReader(s.fs, fsPath(name), bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	log.Info("image saved",
		slog.String("image", name),
		slog.String("mime_type", mtype.String()),
		slog.Int("size", len(data)))
	return name, nil
}

// Exists reports whether name refers to a stored image.
func (s *Store) Exists(name string) (bool, error) {
	clean, err := cleanName(name)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, fsPath(clean))
}

// Remove deletes a stored image. Removing an image that is already gone is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(fsPath(clean)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove image %s: %w", clean, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("image removed", slog.String("image", clean))
	return nil
}

// Handler serves stored images. Mount it with http.StripPrefix so request
// paths are relative to the media root. Directory paths get 404 so stored
// image names cannot be listed.
func (s *Store) Handler() http.Handler {
	files := http.FileServer(afero.NewHttpFs(afero.NewReadOnlyFs(s.fs)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := cleanName(r.URL.Path); err != nil || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// fsPath roots a reference at the media root.
func fsPath(name string) string {
	return "/" + name
}

func cleanName(name string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if path.Dir(clean) != ImageDir {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return clean, nil
}
