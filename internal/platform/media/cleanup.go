package media

import (
	"context"
	"log/slog"

	"github.com/phrazzld/wordcards/internal/events"
	"github.com/phrazzld/wordcards/internal/platform/logger"
)

// ImageReferences counts the cards that point at an image.
// store.CardStore satisfies it.
type ImageReferences interface {
	CountByImage(ctx context.Context, image string) (int, error)
}

// Cleaner removes images once no card references them. It handles card
// events after the store has applied the change, so a count of zero means
// the image is orphaned.
type Cleaner struct {
	images *Store
	refs   ImageReferences
	logger *slog.Logger
}

var _ events.EventHandler = (*Cleaner)(nil)

// NewCleaner creates a Cleaner that deletes from images after checking refs.
func NewCleaner(images *Store, refs ImageReferences, logger *slog.Logger) *Cleaner {
	if images == nil || refs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("images and refs cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		images: images,
		refs:   refs,
		logger: logger.With(slog.String("component", "image_cleaner")),
	}
}

// HandleEvent implements events.EventHandler.
func (c *Cleaner) HandleEvent(ctx context.Context, event *events.CardEvent) error {
	var image string
	switch {
	case event.Type == events.CardDeleted:
		image = event.Image
	case event.ImageReplaced():
		image = event.PreviousImage
	}
	if image == "" {
		return nil
	}

	log := logger.FromContextOrDefault(ctx, c.logger)

	n, err := c.refs.CountByImage(ctx, image)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug("image still referenced",
			slog.String("image", image),
			slog.Int("references", n))
		return nil
	}

	exists, err := c.images.Exists(image)
	if err != nil {
		// References outside the media directory were never uploaded here.
		log.Debug("skipping foreign image reference", slog.String("image", image))
		return nil
	}
	if !exists {
		return nil
	}
	return c.images.Remove(ctx, image)
}
