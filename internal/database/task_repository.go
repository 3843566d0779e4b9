package database

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// TaskRepo handles the date-keyed task entries
type TaskRepo struct {
	db    *sql.DB
	store *Store
	now   func() time.Time
}

// NewTaskRepo creates a task repository over db. A nil clock uses time.Now.
func NewTaskRepo(db *sql.DB, now func() time.Time) *TaskRepo {
	if now == nil {
		now = time.Now
	}
	return &TaskRepo{db: db, store: NewStore(db), now: now}
}

func (r *TaskRepo) timestamp() time.Time {
	return r.now().UTC()
}

// UpsertByDate saves text as the entry for date. An existing entry keeps its
// id, creation time and cached day number; a new one gets its day number from
// the start date read inside the same transaction.
func (r *TaskRepo) UpsertByDate(ctx context.Context, date, text string) (*models.UpsertResult, error) {
	var result *models.UpsertResult

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		store := r.store.WithTx(tx)
		now := r.timestamp()

		existing, err := store.GetTaskByDate(ctx, date)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Text = text
			existing.UpdatedAt = now
			if err := store.PutTask(ctx, existing); err != nil {
				return err
			}
			result = &models.UpsertResult{Action: models.ActionUpdated, Task: existing}
			return nil
		}

		startDate, err := startDateFrom(ctx, store)
		if err != nil {
			return err
		}

		task := &models.Task{
			Date:      date,
			Text:      text,
			DayNumber: progress.DayNumber(date, startDate),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutTask(ctx, task); err != nil {
			return err
		}
		result = &models.UpsertResult{Action: models.ActionInserted, Task: task}
		return nil
	})
	if err != nil {
		slog.Error("failed to upsert task", "date", date, "error", err)
		return nil, err
	}

	return result, nil
}

// GetByDate returns the entry for date, or nil if there is none
func (r *TaskRepo) GetByDate(ctx context.Context, date string) (*models.Task, error) {
	return r.store.GetTaskByDate(ctx, date)
}

// GetByID returns the entry with id, or nil if there is none
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	return r.store.GetTask(ctx, id)
}

// ListAll returns every entry, or only the entry for filterDate when it is set.
// The result is unordered.
func (r *TaskRepo) ListAll(ctx context.Context, filterDate string) ([]*models.Task, error) {
	if filterDate == "" {
		return r.store.GetAllTasks(ctx)
	}

	task, err := r.store.GetTaskByDate(ctx, filterDate)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return []*models.Task{}, nil
	}
	return []*models.Task{task}, nil
}

// ListByDayOrder returns entries sorted by day number, recomputed from the
// current start date. Entries falling on or before day zero are left out.
func (r *TaskRepo) ListByDayOrder(ctx context.Context) ([]*models.Task, error) {
	tasks, err := r.store.GetAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	startDate, err := startDateFrom(ctx, r.store)
	if err != nil {
		return nil, err
	}

	ordered := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		t.DayNumber = progress.DayNumber(t.Date, startDate)
		if t.DayNumber > 0 {
			ordered = append(ordered, t)
		}
	}

	slices.SortStableFunc(ordered, func(a, b *models.Task) int {
		return cmp.Or(
			cmp.Compare(a.DayNumber, b.DayNumber),
			cmp.Compare(a.Date, b.Date),
		)
	})

	return ordered, nil
}

// Update replaces the text of the entry with id
func (r *TaskRepo) Update(ctx context.Context, id int, text string) (*models.Task, error) {
	var updated *models.Task

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		store := r.store.WithTx(tx)

		task, err := store.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", id, models.ErrTaskNotFound)
		}

		task.Text = text
		task.UpdatedAt = r.timestamp()
		if err := store.PutTask(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteByID removes the entry with id. Missing ids are ignored.
func (r *TaskRepo) DeleteByID(ctx context.Context, id int) error {
	return r.store.DeleteTask(ctx, id)
}

// ClearAll removes every entry
func (r *TaskRepo) ClearAll(ctx context.Context) error {
	return r.store.ClearTasks(ctx)
}

// Count returns the number of entries
func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	return r.store.CountTasks(ctx)
}

// CountActiveDays returns the number of distinct dates with an entry
func (r *TaskRepo) CountActiveDays(ctx context.Context) (int, error) {
	return r.store.CountTaskDates(ctx)
}

func startDateFrom(ctx context.Context, store *Store) (string, error) {
	setting, err := store.GetSetting(ctx, models.SettingStartDate)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}
