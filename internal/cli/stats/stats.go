package stats

import (
	"fmt"
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
	"github.com/thenoetrevino/internlog/internal/progress"
	"github.com/thenoetrevino/internlog/internal/services/task"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals and progress",
		Long:  "Show the number of tasks, active days, the start date and progress through the program.",
		RunE:  runStats,
	}

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith("INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if _, err := cliInstance.Session(cmd); err != nil {
		return formatter.Fail(err)
	}

	stats, err := cliInstance.App.TaskService.Stats(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		_, err = fmt.Fprintf(formatter.Writer(), "%d\n", stats.Progress.RoundedPercent())
		return err
	}
	if formatter.JSON {
		return formatter.Success(stats)
	}

	_, err = lipgloss.Fprintln(formatter.Writer(), Card(stats))
	return err
}

// Card renders stats as a bordered dashboard card
func Card(stats *task.Stats) string {
	start := "not set"
	if stats.StartDate != "" {
		start = progress.FormatLong(stats.StartDate)
	}

	bar := fmt.Sprintf("%s %d%%",
		styles.ProgressBar(stats.Progress.Percent, styles.BarWidth),
		stats.Progress.RoundedPercent())

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Internship Progress"),
		"",
		styles.Field("Total tasks", stats.TotalTasks),
		styles.Field("Active days", stats.ActiveDays),
		styles.Field("Start date", start),
		styles.Field("Current day", stats.CurrentDay),
		styles.Field("Completed", fmt.Sprintf("%d of %d days", stats.Progress.Completed, stats.TotalDays)),
		styles.Field("Remaining", fmt.Sprintf("%d days", stats.Progress.Remaining)),
		"",
		bar,
	)
	return styles.CardStyle.Render(body)
}
