package task

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/internlog/internal/database"
	"github.com/thenoetrevino/internlog/internal/export"
	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/services/auth"
	"github.com/thenoetrevino/internlog/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var (
	adminSession  = &auth.Session{Username: "admin", Role: models.RoleAdmin}
	viewerSession = &auth.Session{Username: "admin2", Role: models.RoleViewer}

	// today is day 11 of a program starting 2024-01-01
	today = time.Date(2024, 1, 11, 15, 30, 0, 0, time.UTC)
)

func setupService(t *testing.T, cfg Config) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if cfg.Now == nil {
		cfg.Now = testutil.FixedClock(today)
	}
	return NewService(database.NewRepository(db, database.WithClock(cfg.Now)), cfg)
}

func saveAll(t *testing.T, svc Service, entries map[string]string) {
	t.Helper()
	for date, text := range entries {
		_, err := svc.SaveTask(context.Background(), adminSession, date, text)
		require.NoError(t, err, "save %s", date)
	}
}

// ============================================================================
// SAVE
// ============================================================================

func TestSaveTask_InsertThenUpdate(t *testing.T) {
	svc := setupService(t, Config{})
	ctx := context.Background()

	first, err := svc.SaveTask(ctx, adminSession, "2024-01-01", "  Setup env  ")
	require.NoError(t, err)
	assert.Equal(t, models.ActionInserted, first.Action)
	assert.Equal(t, "Setup env", first.Task.Text)
	assert.Equal(t, 1, first.Task.DayNumber)

	second, err := svc.SaveTask(ctx, adminSession, "2024-01-01", "Fix bug")
	require.NoError(t, err)
	assert.Equal(t, models.ActionUpdated, second.Action)
	assert.Equal(t, first.Task.ID, second.Task.ID)

	got, err := svc.GetTaskForDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Fix bug", got.Text)
}

func TestSaveTask_Validation(t *testing.T) {
	svc := setupService(t, Config{})
	ctx := context.Background()

	tests := []struct {
		name    string
		session *auth.Session
		date    string
		text    string
		wantErr error
	}{
		{"empty text", adminSession, "2024-01-01", "", ErrEmptyTask},
		{"whitespace text", adminSession, "2024-01-01", "   \n", ErrEmptyTask},
		{"empty date", adminSession, "", "work", ErrInvalidDate},
		{"bad date", adminSession, "01/02/2024", "work", ErrInvalidDate},
		{"viewer", viewerSession, "2024-01-01", "work", auth.ErrReadOnlySession},
		{"no session", nil, "2024-01-01", "work", auth.ErrReadOnlySession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SaveTask(ctx, tt.session, tt.date, tt.text)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks, "rejected saves must not write")
}

func TestGetTaskForDate_Empty(t *testing.T) {
	svc := setupService(t, Config{})

	task, err := svc.GetTaskForDate(context.Background(), "2024-01-05")
	require.NoError(t, err)
	assert.Nil(t, task)

	_, err = svc.GetTaskForDate(context.Background(), "yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// ============================================================================
// LIST
// ============================================================================

func TestRecentTasks_NewestFirstAndLimit(t *testing.T) {
	svc := setupService(t, Config{TaskLimit: 2})
	saveAll(t, svc, map[string]string{
		"2024-01-03": "c",
		"2024-01-01": "a",
		"2024-01-02": "b",
	})
	ctx := context.Background()

	tasks, err := svc.RecentTasks(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "2024-01-03", tasks[0].Date)
	assert.Equal(t, "2024-01-02", tasks[1].Date)

	tasks, err = svc.RecentTasks(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	tasks, err = svc.RecentTasks(ctx, "2024-01-01", 0)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Text)

	_, err = svc.RecentTasks(ctx, "not-a-date", 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// ============================================================================
// EDIT / DELETE / CLEAR
// ============================================================================

func TestEditTask(t *testing.T) {
	svc := setupService(t, Config{})
	ctx := context.Background()

	saved, err := svc.SaveTask(ctx, adminSession, "2024-01-02", "draft")
	require.NoError(t, err)

	edited, err := svc.EditTask(ctx, adminSession, saved.Task.ID, " final ")
	require.NoError(t, err)
	assert.Equal(t, "final", edited.Text)

	_, err = svc.EditTask(ctx, adminSession, 999, "x")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)

	_, err = svc.EditTask(ctx, adminSession, 0, "x")
	assert.ErrorIs(t, err, ErrInvalidTaskID)

	_, err = svc.EditTask(ctx, adminSession, saved.Task.ID, "")
	assert.ErrorIs(t, err, ErrEmptyTask)

	_, err = svc.EditTask(ctx, viewerSession, saved.Task.ID, "x")
	assert.ErrorIs(t, err, auth.ErrReadOnlySession)
}

func TestDeleteTask(t *testing.T) {
	svc := setupService(t, Config{})
	ctx := context.Background()

	saved, err := svc.SaveTask(ctx, adminSession, "2024-01-02", "temp")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteTask(ctx, viewerSession, saved.Task.ID), auth.ErrReadOnlySession)
	require.NoError(t, svc.DeleteTask(ctx, adminSession, saved.Task.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, adminSession, saved.Task.ID), ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, adminSession, -1), ErrInvalidTaskID)

	_, err = svc.GetTask(ctx, saved.Task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestClearAll(t *testing.T) {
	svc := setupService(t, Config{})
	saveAll(t, svc, map[string]string{"2024-01-01": "a", "2024-01-02": "b"})
	ctx := context.Background()

	assert.ErrorIs(t, svc.ClearAll(ctx, viewerSession), auth.ErrReadOnlySession)
	require.NoError(t, svc.ClearAll(ctx, adminSession))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)
}

// ============================================================================
// REPORT
// ============================================================================

func TestReport_DayRangeAndSearch(t *testing.T) {
	svc := setupService(t, Config{})
	saveAll(t, svc, map[string]string{
		"2023-12-30": "before start",
		"2024-01-01": "Setup env",
		"2024-01-02": "Review PR",
		"2024-01-05": "review docs",
		"2024-01-09": "Deploy",
	})
	ctx := context.Background()

	all, err := svc.Report(ctx, ReportFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].DayNumber, all[i].DayNumber)
	}

	ranged, err := svc.Report(ctx, ReportFilter{MinDay: 2, MaxDay: 5})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, 2, ranged[0].DayNumber)
	assert.Equal(t, 5, ranged[1].DayNumber)

	searched, err := svc.Report(ctx, ReportFilter{Search: "REVIEW"})
	require.NoError(t, err)
	require.Len(t, searched, 2)
	assert.Equal(t, "Review PR", searched[0].Text)
	assert.Equal(t, "review docs", searched[1].Text)

	none, err := svc.Report(ctx, ReportFilter{MinDay: 3, MaxDay: 4})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReport_InvalidRange(t *testing.T) {
	svc := setupService(t, Config{})
	ctx := context.Background()

	_, err := svc.Report(ctx, ReportFilter{MinDay: 10, MaxDay: 2})
	assert.ErrorIs(t, err, ErrInvalidDayRange)

	_, err = svc.Report(ctx, ReportFilter{MinDay: -1})
	assert.ErrorIs(t, err, ErrInvalidDayRange)
}

func TestReport_FollowsStartDateChange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	clock := testutil.FixedClock(today)
	svc := NewService(database.NewRepository(db, database.WithClock(clock)), Config{Now: clock})
	ctx := context.Background()

	_, err := svc.SaveTask(ctx, adminSession, "2024-01-10", "late task")
	require.NoError(t, err)

	testutil.SetStartDate(t, db, "2024-01-08")

	tasks, err := svc.Report(ctx, ReportFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 3, tasks[0].DayNumber)
}

// ============================================================================
// STATS
// ============================================================================

func TestStats(t *testing.T) {
	svc := setupService(t, Config{})
	saveAll(t, svc, map[string]string{"2024-01-01": "a", "2024-01-02": "b"})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 2, stats.ActiveDays)
	assert.Equal(t, "2024-01-01", stats.StartDate)
	assert.Equal(t, 548, stats.TotalDays)
	assert.Equal(t, 10, stats.Progress.Completed)
	assert.Equal(t, 538, stats.Progress.Remaining)
	assert.InDelta(t, 10.0/548*100, stats.Progress.Percent, 1e-9)
	assert.Equal(t, "10", stats.CurrentDay)
}

func TestStats_NotStarted(t *testing.T) {
	svc := setupService(t, Config{Now: testutil.FixedClock(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC))})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Progress.Completed)
	assert.Equal(t, "Not started", stats.CurrentDay)
}

func TestStats_CustomTotalDays(t *testing.T) {
	svc := setupService(t, Config{TotalDays: 5})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalDays)
	assert.Equal(t, 0, stats.Progress.Remaining)
	assert.Equal(t, 100.0, stats.Progress.Percent)
}

func TestStats_NoStartDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, err := db.Exec(`DELETE FROM settings`)
	require.NoError(t, err)
	svc := NewService(database.NewRepository(db), Config{Now: testutil.FixedClock(today)})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats.StartDate)
	assert.Equal(t, 548, stats.Progress.Remaining)
	assert.Equal(t, "Not started", stats.CurrentDay)
}

// ============================================================================
// EXPORT
// ============================================================================

func TestExport_CSV(t *testing.T) {
	svc := setupService(t, Config{})
	saveAll(t, svc, map[string]string{
		"2024-01-02": `He said "done"`,
		"2024-01-01": "Setup env",
	})

	result, err := svc.Export(context.Background(), export.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "internship_report_2024-01-11.csv", result.FileName)

	lines := strings.Split(string(result.Data), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Day Number,Date,Task", lines[0])
	assert.Equal(t, `1,"Monday, January 1, 2024","Setup env"`, lines[1])
	assert.Equal(t, `2,"Tuesday, January 2, 2024","He said ""done"""`, lines[2])
}

func TestExport_JSON(t *testing.T) {
	svc := setupService(t, Config{})
	saveAll(t, svc, map[string]string{"2024-01-03": "c", "2024-01-01": "a"})

	result, err := svc.Export(context.Background(), export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "internship_report_2024-01-11.json", result.FileName)

	var doc export.Document
	require.NoError(t, json.Unmarshal(result.Data, &doc))
	assert.Equal(t, 2, doc.TotalTasks)
	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "2024-01-01", doc.Tasks[0].Date)
	assert.Equal(t, "2024-01-03", doc.Tasks[1].Date)
	assert.Equal(t, "2024-01-11T15:30:00.000Z", doc.ExportDate)
}

func TestExport_Empty(t *testing.T) {
	svc := setupService(t, Config{})

	_, err := svc.Export(context.Background(), export.FormatCSV)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := setupService(t, Config{})
	saveAll(t, svc, map[string]string{"2024-01-01": "a"})

	_, err := svc.Export(context.Background(), export.Format("xml"))
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}
