package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/internlog/internal/models"
)

const taskColumns = `id, date, task, day_number, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	t := &models.Task{}
	if err := row.Scan(&t.ID, &t.Date, &t.Text, &t.DayNumber, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// PutTask inserts t when its ID is zero (assigning the new ID) and otherwise
// overwrites the record with that ID. A clash on date returns ErrDuplicateDate.
func (s *Store) PutTask(ctx context.Context, t *models.Task) error {
	if t.ID == 0 {
		result, err := s.db.ExecContext(ctx,
			`INSERT INTO tasks (date, task, day_number, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			t.Date, t.Text, t.DayNumber, t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return taskWriteError(t.Date, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read id of task for %s: %w", t.Date, err)
		}
		t.ID = int(id)
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, date, task, day_number, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			task = excluded.task,
			day_number = excluded.day_number,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		t.ID, t.Date, t.Text, t.DayNumber, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return taskWriteError(t.Date, err)
	}
	return nil
}

func taskWriteError(date string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("failed to save task for %s: %w", date, models.ErrDuplicateDate)
	}
	return fmt.Errorf("failed to save task for %s: %w", date, err)
}

// GetTask retrieves a task by primary key
func (s *Store) GetTask(ctx context.Context, id int) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return t, nil
}

// GetTaskByDate is the point lookup through the unique date index
func (s *Store) GetTaskByDate(ctx context.Context, date string) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE date = ?`, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task for %s: %w", date, err)
	}
	return t, nil
}

// GetAllTasks returns every task in no particular order
func (s *Store) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// DeleteTask removes a task; deleting a missing id is not an error
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// ClearTasks removes every task
func (s *Store) ClearTasks(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	return nil
}

// CountTasks returns the number of stored tasks
func (s *Store) CountTasks(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// CountTaskDates returns the number of distinct task dates
func (s *Store) CountTaskDates(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT date) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count task dates: %w", err)
	}
	return count, nil
}
