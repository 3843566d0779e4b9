package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// seedTime is the first-run time used by the test databases; it seeds the
// start date as 2024-01-01.
var seedTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:", seedTime)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "internlog-test.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// InitDB seeds today's date; pin it so day numbers are predictable
	if _, err := db.Exec(`UPDATE settings SET value = '2024-01-01' WHERE key = 'startDate'`); err != nil {
		db.Close()
		t.Fatalf("Failed to pin start date: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := Open(context.Background(), dbPath, time.Now())
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}

	return newDB
}

// ============================================================================
// CLOCKS
// ============================================================================

// stepClock returns a clock that advances by one minute on every call
func stepClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

// setStartDate overwrites the start date directly in the settings table
func setStartDate(t *testing.T, db *sql.DB, date string) {
	t.Helper()
	if err := NewSettingRepo(db, nil).Set(context.Background(), "startDate", date); err != nil {
		t.Fatalf("Failed to set start date: %v", err)
	}
}
