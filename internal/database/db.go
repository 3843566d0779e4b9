// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// InitDB opens (creating if needed) the database file at path, applies the
// connection pragmas and runs migrations.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return Open(ctx, path, time.Now())
}

// Open connects to dsn and prepares the schema. now stamps seeded rows and is
// the source of the initial start date.
func Open(ctx context.Context, dsn string, now time.Time) (*sql.DB, error) {
	db, err := sql.Open("sqlite", withConnParams(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection; for :memory: it also
	// keeps every query on the same database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db, now); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// connParams are applied by the driver to every connection it opens.
// Transactions begin IMMEDIATE so a read-then-write upsert takes the write
// lock up front and waits on busy_timeout instead of failing to upgrade.
var connParams = url.Values{
	"_pragma": {
		"busy_timeout(5000)",
		"foreign_keys(1)",
		"journal_mode(WAL)",
	},
	"_txlock": {"immediate"},
}

func withConnParams(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + connParams.Encode()
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
