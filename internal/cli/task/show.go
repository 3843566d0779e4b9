package task

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the task for a date",
		Long:  "Display the task recorded for a date (today by default). An empty day is not an error.",
		RunE:  runShow,
	}

	cmd.Flags().String("date", "", "Date in YYYY-MM-DD form (default today)")
	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	if _, err := cliInstance.Session(cmd); err != nil {
		return formatter.Fail(err)
	}

	date := cli.DateArg(cmd, cliInstance)
	task, err := cliInstance.App.TaskService.GetTaskForDate(ctx, date)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		if task != nil {
			return formatter.Success(task)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(task)
	}

	long := progress.FormatLong(date)

	if task == nil {
		_, err = lipgloss.Fprintln(formatter.Writer(), styles.SubtitleStyle.Render("No task recorded for "+long))
		return err
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(long),
		"",
		styles.ValueStyle.Render(task.Text),
		"",
		styles.Field("Day", task.DayNumber),
		styles.Field("ID", task.ID),
		styles.Field("Updated", humanize.RelTime(task.UpdatedAt, cliInstance.App.Now(), "ago", "from now")),
	)
	_, err = lipgloss.Fprintln(formatter.Writer(), styles.CardStyle.Render(body))
	if err != nil {
		return fmt.Errorf("failed to write task: %w", err)
	}
	return nil
}
