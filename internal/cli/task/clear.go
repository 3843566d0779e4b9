package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
)

var errConfirmationRequired = errors.New("clearing every task needs confirmation")

// ClearCmd returns the task clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Long: `Delete every task. Settings and users are kept.
Without --yes the command asks for confirmation on a terminal and refuses otherwise.`,
		RunE: runClear,
	}

	cmd.Flags().Bool("yes", false, "Confirm without prompting")

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	yes, _ := cmd.Flags().GetBool("yes")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	session, err := cliInstance.Session(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := session.RequireEditor(); err != nil {
		return formatter.Fail(err)
	}

	if !yes {
		if !cli.Interactive() {
			return formatter.FailWith("CONFIRMATION_REQUIRED", cli.ExitUsage, errConfirmationRequired, "Pass --yes to clear without prompting")
		}
		ok, err := cli.Confirm("Are you sure you want to clear all data? This cannot be undone.")
		if err != nil {
			return formatter.FailWith("PROMPT_ERROR", cli.ExitError, err, "Pass --yes to skip confirmation")
		}
		if !ok {
			fmt.Fprintln(formatter.Writer(), "Cancelled")
			return nil
		}
	}

	count, err := cliInstance.Repo().CountTasks(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.App.TaskService.ClearAll(ctx, session); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]int{"deleted": count})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Cleared %d tasks\n", count)
	return nil
}
