package report

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
	"github.com/thenoetrevino/internlog/internal/services/task"
)

// wrapWidth is the glamour word-wrap column
const wrapWidth = 80

// Response is the JSON form of a report
type Response struct {
	StartDate  string         `json:"startDate"`
	CurrentDay string         `json:"currentDay"`
	TotalDays  int            `json:"totalDays"`
	MinDay     int            `json:"minDay"`
	MaxDay     int            `json:"maxDay"`
	Search     string         `json:"search,omitempty"`
	Count      int            `json:"count"`
	Tasks      []*models.Task `json:"tasks"`
}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the day-by-day report",
		Long: `Show every task from day 1 onward in day order, with day numbers computed
from the current start date. Narrow it with a day range or a text search.`,
		Example: `  internlog report --min-day 1 --max-day 30
  internlog report --search "review"`,
		RunE: runReport,
	}

	cmd.Flags().Int("min-day", 1, "First day to include")
	cmd.Flags().Int("max-day", 0, "Last day to include (default last day of the program)")
	cmd.Flags().String("search", "", "Only tasks whose text contains this (case-insensitive)")
	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	filter := task.ReportFilter{}
	filter.MinDay, _ = cmd.Flags().GetInt("min-day")
	filter.MaxDay, _ = cmd.Flags().GetInt("max-day")
	filter.Search, _ = cmd.Flags().GetString("search")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith("INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	defer cliInstance.Close()

	if _, err := cliInstance.Session(cmd); err != nil {
		return formatter.Fail(err)
	}

	stats, err := cliInstance.App.TaskService.Stats(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.App.TaskService.Report(ctx, filter)
	if err != nil {
		return formatter.Fail(err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	if filter.MaxDay == 0 {
		filter.MaxDay = stats.TotalDays
	}

	if formatter.Quiet {
		ids := make([]int, len(tasks))
		for i, t := range tasks {
			ids[i] = t.ID
		}
		return formatter.IDs(ids)
	}

	if formatter.JSON {
		return formatter.Success(Response{
			StartDate:  stats.StartDate,
			CurrentDay: stats.CurrentDay,
			TotalDays:  stats.TotalDays,
			MinDay:     filter.MinDay,
			MaxDay:     filter.MaxDay,
			Search:     filter.Search,
			Count:      len(tasks),
			Tasks:      tasks,
		})
	}

	rendered, err := Render(Markdown(stats, filter, tasks))
	if err != nil {
		return formatter.Fail(err)
	}
	_, err = fmt.Fprint(formatter.Writer(), rendered)
	return err
}

// Markdown lays the report out as a markdown document
func Markdown(stats *task.Stats, filter task.ReportFilter, tasks []*models.Task) string {
	var b strings.Builder

	b.WriteString("# Internship Report\n\n")

	start := "not set"
	if stats.StartDate != "" {
		start = progress.FormatLong(stats.StartDate)
	}
	fmt.Fprintf(&b, "- **Start date:** %s\n", start)
	current := stats.CurrentDay
	if stats.Progress.Completed > 0 {
		current = fmt.Sprintf("%s of %d", stats.CurrentDay, stats.TotalDays)
	}
	fmt.Fprintf(&b, "- **Current day:** %s\n", current)
	fmt.Fprintf(&b, "- **Days shown:** %d (day %d to %d)\n", len(tasks), filter.MinDay, filter.MaxDay)
	if filter.Search != "" {
		fmt.Fprintf(&b, "- **Search:** %q\n", filter.Search)
	}

	if len(tasks) == 0 {
		b.WriteString("\n_No tasks found._\n")
		return b.String()
	}

	for _, t := range tasks {
		fmt.Fprintf(&b, "\n## Day %d: %s\n\n%s\n", t.DayNumber, progress.FormatLong(t.Date), t.Text)
	}

	return b.String()
}

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
	rendererErr  error
)

// Render turns report markdown into terminal output
func Render(markdown string) (string, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrapWidth),
		)
	})
	if rendererErr != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", rendererErr)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
