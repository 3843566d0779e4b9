package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/internlog/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*SettingRepo
	*UserRepo
}

// Option configures a Repository
type Option func(*repositoryOptions)

type repositoryOptions struct {
	now func() time.Time
}

// WithClock sets the time source used to stamp created and updated times
func WithClock(now func() time.Time) Option {
	return func(o *repositoryOptions) {
		o.now = now
	}
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	o := repositoryOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Repository{
		TaskRepo:    NewTaskRepo(db, o.now),
		SettingRepo: NewSettingRepo(db, o.now),
		UserRepo:    NewUserRepo(db),
	}
}

// Wrapper methods for TaskRepo
func (r *Repository) UpsertTaskByDate(ctx context.Context, date, text string) (*models.UpsertResult, error) {
	return r.TaskRepo.UpsertByDate(ctx, date, text)
}

func (r *Repository) GetTaskByDate(ctx context.Context, date string) (*models.Task, error) {
	return r.TaskRepo.GetByDate(ctx, date)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) ListTasks(ctx context.Context, filterDate string) ([]*models.Task, error) {
	return r.TaskRepo.ListAll(ctx, filterDate)
}

func (r *Repository) ListTasksByDayOrder(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.ListByDayOrder(ctx)
}

func (r *Repository) UpdateTask(ctx context.Context, id int, text string) (*models.Task, error) {
	return r.TaskRepo.Update(ctx, id, text)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	return r.TaskRepo.DeleteByID(ctx, id)
}

func (r *Repository) ClearTasks(ctx context.Context) error {
	return r.TaskRepo.ClearAll(ctx)
}

func (r *Repository) CountTasks(ctx context.Context) (int, error) {
	return r.TaskRepo.Count(ctx)
}

// CountActiveDays is promoted from TaskRepo unchanged

// Wrapper methods for SettingRepo
func (r *Repository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	return r.SettingRepo.Get(ctx, key)
}

func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	return r.SettingRepo.Set(ctx, key, value)
}

func (r *Repository) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	return r.SettingRepo.All(ctx)
}

// Wrapper methods for UserRepo
func (r *Repository) GetUser(ctx context.Context, username string) (*models.User, error) {
	return r.UserRepo.Get(ctx, username)
}

// Authenticate is promoted from UserRepo unchanged
