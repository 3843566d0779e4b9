package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long:  "Delete a task by ID (asks for confirmation on a terminal unless --force or --quiet).",
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	taskID, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	session, err := cliInstance.Session(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	// Ask for confirmation unless force, quiet, JSON or no terminal
	if !force && formatter.Human() && cli.Interactive() {
		task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
		if err != nil {
			return formatter.Fail(err)
		}
		ok, err := cli.Confirm(fmt.Sprintf("Delete the task for %s: '%s'?", task.Date, task.Text))
		if err != nil {
			return formatter.FailWith("PROMPT_ERROR", cli.ExitError, err, "Pass --force to skip confirmation")
		}
		if !ok {
			fmt.Fprintln(formatter.Writer(), "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, session, taskID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]int{"taskId": taskID})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Task %d deleted successfully\n", taskID)
	return nil
}
