package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// Option configures an App
type Option func(*options)

type options struct {
	logger    *slog.Logger
	now       func() time.Time
	totalDays int
	taskLimit int
}

func defaultOptions() options {
	return options{
		logger:    slog.Default(),
		now:       time.Now,
		totalDays: progress.TotalDays,
		taskLimit: models.DefaultTaskLimit,
	}
}

// WithLogger sets the logger the services write to
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces time.Now for timestamps, progress and export names
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithTotalDays sets the program length. Non-positive values are ignored.
func WithTotalDays(days int) Option {
	return func(o *options) {
		if days > 0 {
			o.totalDays = days
		}
	}
}

// WithTaskLimit sets the default size of the recent task list.
// Non-positive values are ignored.
func WithTaskLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.taskLimit = limit
		}
	}
}
