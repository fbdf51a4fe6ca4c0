package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the query methods shared by *sql.DB and *sql.Tx, so SQL
// stores can run the same code inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
