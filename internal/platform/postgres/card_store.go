package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/store"
)

const cardColumns = `id, word, translation, image, created_at, updated_at`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	sqlDB  *sql.DB
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db *sql.DB, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		sqlDB:  db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.TxCardStore interface
var _ store.TxCardStore = (*PostgresCardStore)(nil)

// WithTx returns a card store that runs its queries on tx.
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		sqlDB:  s.sqlDB,
		logger: s.logger,
	}
}

// DB returns the underlying database connection.
func (s *PostgresCardStore) DB() *sql.DB {
	return s.sqlDB
}

// Create implements store.CardStore.Create.
// The database assigns the ID and timestamps, which are written back into card.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.ValidateContent(); err != nil {
		log.Warn("card validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cards (word, translation, image)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, card.Word, card.Translation, nullableImage(card.Image)).
		Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		log.Error("failed to create card", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create card: %w", MapError(err))
	}

	log.Info("card created", slog.String("card_id", card.ID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("card_id", id.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, fmt.Errorf("failed to get card: %w", MapError(err))
	}

	return card, nil
}

// Update implements store.CardStore.Update.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during update",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE cards
		SET word = $1, translation = $2, image = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		card.Word,
		card.Translation,
		nullableImage(card.Image),
		card.ID,
	).Scan(&card.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found for update", slog.String("card_id", card.ID.String()))
			return store.ErrCardNotFound
		}
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("failed to update card: %w", MapError(err))
	}

	log.Info("card updated", slog.String("card_id", card.ID.String()))
	return nil
}

// Delete implements store.CardStore.Delete.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return fmt.Errorf("failed to delete card: %w", MapError(err))
	}

	if err := CheckRowsAffected(result, "card"); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("card not found for delete", slog.String("card_id", id.String()))
			return store.ErrCardNotFound
		}
		return err
	}

	log.Info("card deleted", slog.String("card_id", id.String()))
	return nil
}

// List implements store.CardStore.List.
// Cards come back oldest first; callers must not rely on that order.
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list cards: %w", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan card: %w", MapError(err))
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list cards: %w", MapError(err))
	}

	log.Debug("listed cards", slog.Int("count", len(cards)))
	return cards, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	var image sql.NullString

	if err := row.Scan(
		&card.ID,
		&card.Word,
		&card.Translation,
		&image,
		&card.CreatedAt,
		&card.UpdatedAt,
	); err != nil {
		return nil, err
	}

	card.Image = image.String
	return &card, nil
}

func nullableImage(image string) sql.NullString {
	return sql.NullString{String: image, Valid: image != ""}
}

// CountByImage implements store.CardStore.CountByImage.
func (s *PostgresCardStore) CountByImage(ctx context.Context, image string) (int, error) {
	if image == "" {
		return 0, nil
	}

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE image = $1`, image).Scan(&n)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count image references",
			slog.String("error", err.Error()),
			slog.String("image", image))
		return 0, fmt.Errorf("failed to count image references: %w", MapError(err))
	}
	return n, nil
}
