package app

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/internlog/internal/database"
	authservice "github.com/thenoetrevino/internlog/internal/services/auth"
	settingsservice "github.com/thenoetrevino/internlog/internal/services/settings"
	taskservice "github.com/thenoetrevino/internlog/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	ownsDB bool
	logger *slog.Logger
	now    func() time.Time

	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	AuthService     authservice.Service
	TaskService     taskservice.Service
	SettingsService settingsservice.Service
}

// New creates a new App with all services initialized over an open database.
// The caller keeps ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	repo := database.NewRepository(db, database.WithClock(o.now))

	return &App{
		db:          db,
		logger:      o.logger,
		now:         o.now,
		repo:        repo,
		AuthService: authservice.NewService(repo, o.now, o.logger.With("service", "auth")),
		TaskService: taskservice.NewService(repo, taskservice.Config{
			TotalDays: o.totalDays,
			TaskLimit: o.taskLimit,
			Now:       o.now,
			Logger:    o.logger.With("service", "task"),
		}),
		SettingsService: settingsservice.NewService(repo, o.logger.With("service", "settings")),
	}
}

// Open opens (creating if needed) the database at path and builds an App
// that closes it on Close.
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, err
	}

	a := New(db, opts...)
	a.ownsDB = true
	return a, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the logger the services write their audit log to
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Now reads the App's clock
func (a *App) Now() time.Time {
	return a.now()
}

// Close releases the database if the App opened it
func (a *App) Close() error {
	if a.ownsDB && a.db != nil {
		return a.db.Close()
	}
	return nil
}
