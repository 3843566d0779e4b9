package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/internlog/internal/database"
)

// SeedTime is the first-run time of every test database. The start date is
// therefore seeded as 2024-01-01.
var SeedTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports now
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// SetupTestDB creates an in-memory database with full schema and seed data.
// The database is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:", SeedTime)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// SetStartDate overwrites the stored start date
func SetStartDate(t *testing.T, db *sql.DB, date string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`UPDATE settings SET value = ?, updated_at = ? WHERE key = 'startDate'`,
		date, SeedTime,
	)
	if err != nil {
		t.Fatalf("Failed to set start date: %v", err)
	}
}

// CreateTestTask inserts a task directly and returns its ID.
// dayNumber is stored as given, which lets tests plant stale cached values.
func CreateTestTask(t *testing.T, db *sql.DB, date, text string, dayNumber int) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO tasks (date, task, day_number, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		date, text, dayNumber, SeedTime, SeedTime,
	)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	taskID, _ := result.LastInsertId()
	return int(taskID)
}
