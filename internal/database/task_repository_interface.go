package database

import (
	"context"

	"github.com/thenoetrevino/internlog/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTaskByDate(ctx context.Context, date string) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context, filterDate string) ([]*models.Task, error)
	ListTasksByDayOrder(ctx context.Context) ([]*models.Task, error)
	CountTasks(ctx context.Context) (int, error)
	CountActiveDays(ctx context.Context) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	UpsertTaskByDate(ctx context.Context, date, text string) (*models.UpsertResult, error)
	UpdateTask(ctx context.Context, id int, text string) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
	ClearTasks(ctx context.Context) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
