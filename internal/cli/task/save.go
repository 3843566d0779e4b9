package task

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// SaveCmd returns the task save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the task for a date",
		Long: `Save the task entry for a date (today by default).
A date holds at most one task: saving again replaces the text of the existing entry.`,
		Example: `  internlog task save --text "Set up the dev environment"
  internlog task save --date 2024-01-02 --text "Reviewed PR #12" --json`,
		RunE: runSave,
	}

	cmd.Flags().String("date", "", "Date in YYYY-MM-DD form (default today)")
	cmd.Flags().String("text", "", "What was done (required)")
	_ = cmd.MarkFlagRequired("text")

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	text, _ := cmd.Flags().GetString("text")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	session, err := cliInstance.Session(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	date := cli.DateArg(cmd, cliInstance)
	result, err := cliInstance.App.TaskService.SaveTask(ctx, session, date, text)
	if err != nil {
		return formatter.Fail(err)
	}

	if !formatter.Human() {
		return formatter.Success(result)
	}

	verb := "added"
	if result.Action == models.ActionUpdated {
		verb = "updated"
	}
	_, err = lipgloss.Fprintln(formatter.Writer(),
		styles.SuccessStyle.Render("✓"),
		fmt.Sprintf("Task %s for %s", verb, progress.FormatLong(result.Task.Date)),
		styles.SubtitleStyle.Render(fmt.Sprintf("(#%d, day %d)", result.Task.ID, result.Task.DayNumber)),
	)
	return err
}
