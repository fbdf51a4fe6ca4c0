package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/wordcards/internal/platform/postgres"
	"github.com/phrazzld/wordcards/internal/redact"
	"github.com/stretchr/testify/require"
)

// DatabaseURLEnv names the variable holding the integration database URL.
const DatabaseURLEnv = "WORDCARDS_TEST_DATABASE_URL"

// TestTimeout bounds connection checks against the test database.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the integration database URL, or "" when unset.
func GetTestDatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// ShouldSkipDatabaseTest reports whether integration tests lack a database.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// GetTestDBWithT opens the integration database, migrates it to the latest
// version and closes it when the test ends. The test is skipped when no
// database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip(DatabaseURLEnv + " not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open database connection to %s", redact.String(dbURL))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "database ping failed")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	require.NoError(t, postgres.Migrate(context.Background(), db, nil, "up"), "failed to run migrations")
	return db
}

// CleanupDB closes db, logging rather than failing on error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already ended the transaction.
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
