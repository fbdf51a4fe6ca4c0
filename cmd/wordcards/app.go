package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/wordcards/internal/config"
	"github.com/phrazzld/wordcards/internal/events"
	"github.com/phrazzld/wordcards/internal/platform/media"
	"github.com/phrazzld/wordcards/internal/platform/memory"
	"github.com/phrazzld/wordcards/internal/platform/postgres"
	"github.com/phrazzld/wordcards/internal/service"
	"github.com/phrazzld/wordcards/internal/store"
)

// application holds the dependencies shared by the HTTP server and the
// CLI commands.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory backend.
	db *sql.DB

	cardStore store.CardStore
	images    *media.Store

	eventEmitter *events.InMemoryEventEmitter

	cardService     service.CardService
	trainingService service.TrainingService
}

// newApplication builds the card store selected by the configuration and
// the services on top of it. db may be nil for the memory backend; for the
// postgres backend it must be an open connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	switch cfg.Database.Backend {
	case config.BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres backend requires a database connection")
		}
		app.cardStore = postgres.NewPostgresCardStore(db, logger)
	case config.BackendMemory:
		app.cardStore = memory.NewCardStore(logger)
		logger.Warn("using in-memory card store; cards are lost on exit")
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Database.Backend)
	}

	var err error
	app.images, err = media.NewDiskStore(cfg.Media.Dir, cfg.Media.MaxUploadBytes, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}

	// Deleting or re-imaging a card removes the image it no longer uses.
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(media.NewCleaner(app.images, app.cardStore, logger))

	app.cardService, err = service.NewCardService(app.cardStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	app.trainingService, err = service.NewTrainingService(app.cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create training service: %w", err)
	}

	logger.Info("Application initialized",
		slog.String("backend", cfg.Database.Backend),
		slog.String("media_dir", cfg.Media.Dir))
	return app, nil
}

// openApplication connects to the configured backend and builds the
// application. The caller must call cleanup when done.
func openApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	var db *sql.DB
	if cfg.Database.Backend == config.BackendPostgres {
		var err error
		db, err = setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
