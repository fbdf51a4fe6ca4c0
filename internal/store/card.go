package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/wordcards/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card. The store assigns the card's ID and timestamps
	// and writes them back into the given card.
	// Returns domain validation errors if the card data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// Update replaces the word, translation and image of an existing card.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns every card in the store. No particular order is guaranteed.
	// Returns an empty slice, never nil, when the store is empty.
	List(ctx context.Context) ([]*domain.Card, error)

	// CountByImage returns how many cards reference the given image.
	CountByImage(ctx context.Context, image string) (int, error)
}

// TxCardStore is implemented by stores backed by a SQL database, allowing
// several card operations to run inside a single transaction.
//
// Example usage:
//
//	err := store.RunInTransaction(ctx, cardStore.DB(), func(ctx context.Context, tx *sql.Tx) error {
//	    txStore := cardStore.WithTx(tx)
//	    return txStore.Create(ctx, card)
//	})
type TxCardStore interface {
	CardStore

	// WithTx returns a CardStore that runs its queries on the given transaction.
	WithTx(tx *sql.Tx) CardStore

	// DB returns the underlying database connection.
	DB() *sql.DB
}
