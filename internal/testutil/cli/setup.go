package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/internlog/internal/app"
	"github.com/thenoetrevino/internlog/internal/testutil"
)

// Now is the clock of every CLI test app: day 10 of a program starting on
// 2024-01-01.
var Now = time.Date(2024, 1, 10, 10, 30, 0, 0, time.UTC)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithClock(testutil.FixedClock(Now)))

	return db, appInstance
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
// Creates a test task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, date, text string, dayNumber int) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, date, text, dayNumber)
}

// CountTasks returns the number of stored tasks
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return count
}
