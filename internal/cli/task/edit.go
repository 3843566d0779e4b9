package task

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change the text of a task",
		Long:  "Replace the text of an existing task by ID. The date and day number stay as they are.",
		RunE:  runEdit,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("text", "", "New text (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("text")

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	taskID, _ := cmd.Flags().GetInt("id")
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

	task, err := cliInstance.App.TaskService.EditTask(ctx, session, taskID, text)
	if err != nil {
		return formatter.Fail(err)
	}

	if !formatter.Human() {
		return formatter.Success(task)
	}

	_, err = lipgloss.Fprintln(formatter.Writer(),
		styles.SuccessStyle.Render("✓"),
		fmt.Sprintf("Task %d updated successfully", task.ID),
	)
	return err
}
