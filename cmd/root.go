package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	configcmd "github.com/thenoetrevino/internlog/internal/cli/config"
	"github.com/thenoetrevino/internlog/internal/cli/export"
	"github.com/thenoetrevino/internlog/internal/cli/login"
	"github.com/thenoetrevino/internlog/internal/cli/report"
	"github.com/thenoetrevino/internlog/internal/cli/settings"
	"github.com/thenoetrevino/internlog/internal/cli/stats"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
	"github.com/thenoetrevino/internlog/internal/cli/task"
	"github.com/thenoetrevino/internlog/internal/config"
	"github.com/thenoetrevino/internlog/internal/logging"
)

// NewRootCmd builds the internlog command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "internlog",
		Short: "internlog - a daily task log for an internship",
		Long: `internlog records one task entry per day of an internship, tracks progress
through the program and exports the day-by-day report as CSV or JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().String("db", "", "Database file (default ~/.internlog/internlog.db)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(login.LoginCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(settings.SettingsCmd())
	rootCmd.AddCommand(report.ReportCmd())
	rootCmd.AddCommand(stats.StatsCmd())
	rootCmd.AddCommand(export.ExportCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	return rootCmd
}

// setup loads the configuration, starts logging and applies the theme
// before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return formatter.FailWith("CONFIGURATION_ERROR", cli.ExitError, err, "Check config.yaml and INTERNLOG_* variables")
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return formatter.FailWith("CONFIGURATION_ERROR", cli.ExitError,
			fmt.Errorf("failed to resolve data directory: %w", err), "")
	}
	if err := logging.Init(dataDir, cfg.Logging.Level); err != nil {
		return formatter.FailWith("CONFIGURATION_ERROR", cli.ExitUsage,
			fmt.Errorf("failed to initialize logging: %w", err), "Use --log-level debug, info, warn or error")
	}

	styles.Init(cfg.Theme)

	slog.Debug("command starting", "command", cmd.CommandPath(), "data_dir", dataDir)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Errors from RunE have already been printed by the output formatter
	if cli.Reported(err) {
		return cli.ExitCodeOf(err)
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	fmt.Fprintf(os.Stderr, "💡 Suggestion: Run '%s --help' for usage\n", rootCmd.Name())
	return cli.ExitUsage
}
