package database

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same Store code runs
// standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the keyed record layer for users, tasks and settings.
// Every method is a single statement and therefore atomic on its own.
// Lookups return a nil record and a nil error when nothing matches.
type Store struct {
	db DBTX
}

// NewStore creates a Store on top of a connection or transaction
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// WithTx returns a Store whose operations run inside tx
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{db: tx}
}
