package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// SeedUser is one entry of the built-in login list
type SeedUser struct {
	Username string
	Password string
	Role     models.Role
}

// DefaultUsers are inserted on first run and never modified afterwards
var DefaultUsers = []SeedUser{
	{Username: "admin", Password: "admin@asmath", Role: models.RoleAdmin},
	{Username: "admin2", Password: "admin@AHBETA", Role: models.RoleViewer},
}

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB, now time.Time) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'viewer' CHECK (role IN ('admin', 'viewer')),
			created_at DATETIME NOT NULL
		)`,
		// date is TEXT on purpose: a DATE column would come back as time.Time
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL UNIQUE,
			task TEXT NOT NULL,
			day_number INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_day_number ON tasks(day_number)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if err := seedDefaultUsers(ctx, db, now); err != nil {
		return err
	}

	return seedDefaultSettings(ctx, db, now)
}

// seedDefaultUsers inserts the built-in users that are not present yet
func seedDefaultUsers(ctx context.Context, db *sql.DB, now time.Time) error {
	for _, u := range DefaultUsers {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (username, password, role, created_at)
			 VALUES (?, ?, ?, ?)`,
			u.Username, u.Password, string(u.Role), now.UTC(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// seedDefaultSettings sets the start date to today on the very first run only
func seedDefaultSettings(ctx context.Context, db *sql.DB, now time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		models.SettingStartDate, progress.FormatDate(now), now.UTC(),
	)
	return err
}
