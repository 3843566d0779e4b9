package task

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/internlog/internal/database"
	"github.com/thenoetrevino/internlog/internal/export"
	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
	"github.com/thenoetrevino/internlog/internal/services/auth"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTaskForDate(ctx context.Context, date string) (*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	RecentTasks(ctx context.Context, filterDate string, limit int) ([]*models.Task, error)
	Report(ctx context.Context, filter ReportFilter) ([]*models.Task, error)
	Stats(ctx context.Context) (*Stats, error)
	Export(ctx context.Context, format export.Format) (*ExportResult, error)

	// Write operations
	SaveTask(ctx context.Context, session *auth.Session, date, text string) (*models.UpsertResult, error)
	EditTask(ctx context.Context, session *auth.Session, id int, text string) (*models.Task, error)
	DeleteTask(ctx context.Context, session *auth.Session, id int) error
	ClearAll(ctx context.Context, session *auth.Session) error
}

// Config carries the tunables of the task service
type Config struct {
	// TotalDays is the program length; zero means progress.TotalDays
	TotalDays int
	// TaskLimit caps RecentTasks when the caller passes no limit
	TaskLimit int
	// Now is the clock used for progress and export stamps
	Now func() time.Time
	// Logger receives the audit log of changes; nil means slog.Default()
	Logger *slog.Logger
}

// ReportFilter narrows the day-ordered report.
// A zero MaxDay means the last day of the program.
type ReportFilter struct {
	MinDay int
	MaxDay int
	Search string
}

// Stats summarises the log for the dashboard
type Stats struct {
	TotalTasks int               `json:"totalTasks"`
	ActiveDays int               `json:"activeDays"`
	StartDate  string            `json:"startDate"`
	TotalDays  int               `json:"totalDays"`
	CurrentDay string            `json:"currentDay"`
	Progress   progress.Progress `json:"progress"`
}

// ExportResult is an encoded report ready to be written out
type ExportResult struct {
	Format   export.Format `json:"format"`
	FileName string        `json:"fileName"`
	Count    int           `json:"count"`
	Data     []byte        `json:"-"`
}

// service implements Service interface
type service struct {
	repo database.DataStore
	cfg  Config
}

// NewService creates a new task service
func NewService(repo database.DataStore, cfg Config) Service {
	if cfg.TotalDays <= 0 {
		cfg.TotalDays = progress.TotalDays
	}
	if cfg.TaskLimit <= 0 {
		cfg.TaskLimit = models.DefaultTaskLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &service{repo: repo, cfg: cfg}
}

// SaveTask records text as the entry for date, replacing any earlier entry
func (s *service) SaveTask(ctx context.Context, session *auth.Session, date, text string) (*models.UpsertResult, error) {
	date = strings.TrimSpace(date)
	text = strings.TrimSpace(text)

	if err := validateDate(date); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrEmptyTask
	}
	if err := session.RequireEditor(); err != nil {
		return nil, err
	}

	result, err := s.repo.UpsertTaskByDate(ctx, date, text)
	if err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	s.cfg.Logger.Info("task saved", "date", date, "action", result.Action, "id", result.Task.ID)
	return result, nil
}

// GetTaskForDate returns the entry for date, or nil when the day is empty
func (s *service) GetTaskForDate(ctx context.Context, date string) (*models.Task, error) {
	date = strings.TrimSpace(date)
	if err := validateDate(date); err != nil {
		return nil, err
	}

	task, err := s.repo.GetTaskByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetTask returns the entry with id, or ErrTaskNotFound
func (s *service) GetTask(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}

	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// RecentTasks lists entries newest date first, limited to limit entries
// (the configured default when limit is not positive).
func (s *service) RecentTasks(ctx context.Context, filterDate string, limit int) ([]*models.Task, error) {
	filterDate = strings.TrimSpace(filterDate)
	if filterDate != "" {
		if err := validateDate(filterDate); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = s.cfg.TaskLimit
	}

	tasks, err := s.repo.ListTasks(ctx, filterDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	slices.SortFunc(tasks, func(a, b *models.Task) int {
		return cmp.Compare(b.Date, a.Date)
	})

	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

// EditTask replaces the text of an existing entry
func (s *service) EditTask(ctx context.Context, session *auth.Session, id int, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)

	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	if text == "" {
		return nil, ErrEmptyTask
	}
	if err := session.RequireEditor(); err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateTask(ctx, id, text)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.cfg.Logger.Info("task edited", "id", id, "date", task.Date)
	return task, nil
}

// DeleteTask removes the entry with id
func (s *service) DeleteTask(ctx context.Context, session *auth.Session, id int) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	if err := session.RequireEditor(); err != nil {
		return err
	}

	existing, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if existing == nil {
		return ErrTaskNotFound
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.cfg.Logger.Info("task deleted", "id", id, "date", existing.Date)
	return nil
}

// ClearAll removes every entry
func (s *service) ClearAll(ctx context.Context, session *auth.Session) error {
	if err := session.RequireEditor(); err != nil {
		return err
	}

	if err := s.repo.ClearTasks(ctx); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	s.cfg.Logger.Warn("all tasks cleared", "user", session.Username)
	return nil
}

// Report returns the day-ordered entries inside the filter's day range whose
// text contains Search, ignoring case.
func (s *service) Report(ctx context.Context, filter ReportFilter) ([]*models.Task, error) {
	maxDay := filter.MaxDay
	if maxDay == 0 {
		maxDay = s.cfg.TotalDays
	}
	if filter.MinDay < 0 || maxDay < 0 || filter.MinDay > maxDay {
		return nil, fmt.Errorf("%d to %d: %w", filter.MinDay, maxDay, ErrInvalidDayRange)
	}

	tasks, err := s.repo.ListTasksByDayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DayNumber < filter.MinDay || t.DayNumber > maxDay {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Text), search) {
			continue
		}
		filtered = append(filtered, t)
	}

	return filtered, nil
}

// Stats counts entries and measures progress against today
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.CountTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	active, err := s.repo.CountActiveDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active days: %w", err)
	}

	startDate, _, err := s.repo.GetSetting(ctx, models.SettingStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read start date: %w", err)
	}

	stats := &Stats{
		TotalTasks: total,
		ActiveDays: active,
		StartDate:  startDate,
		TotalDays:  s.cfg.TotalDays,
		Progress:   progress.Progress{Remaining: s.cfg.TotalDays},
	}

	if start, err := progress.ParseDate(startDate); err == nil {
		stats.Progress = progress.Compute(start, progress.Today(s.cfg.Now()), s.cfg.TotalDays)
	}
	stats.CurrentDay = progress.CurrentDayLabel(stats.Progress)

	return stats, nil
}

// Export encodes the full day-ordered report
func (s *service) Export(ctx context.Context, format export.Format) (*ExportResult, error) {
	tasks, err := s.repo.ListTasksByDayOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNothingToExport
	}

	now := s.cfg.Now()
	data, err := export.Render(format, tasks, now)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Format:   format,
		FileName: export.FileName(format, now),
		Count:    len(tasks),
		Data:     data,
	}, nil
}

func validateDate(date string) error {
	if !progress.ValidDate(date) {
		return fmt.Errorf("%q: %w", date, ErrInvalidDate)
	}
	return nil
}
