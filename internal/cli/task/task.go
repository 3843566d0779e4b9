package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage daily tasks",
		Long:  "Record, review and correct the one task entry kept for each day of the internship.",
	}

	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// openCLI resolves the CLI for cmd, reporting initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.FailWith("INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}, nil
}
