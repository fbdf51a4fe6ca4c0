// Package postgres provides the PostgreSQL implementation of the card store
// defined in internal/store, together with the embedded goose migrations
// that create its schema.
package postgres
