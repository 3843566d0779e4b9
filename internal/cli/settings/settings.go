package settings

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// StartDateResponse is the JSON form of the start date
type StartDateResponse struct {
	StartDate     string `json:"startDate"`
	FormattedDate string `json:"formattedDate,omitempty"`
}

// SettingsCmd returns the settings parent command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change settings",
	}

	cmd.AddCommand(StartDateCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// StartDateCmd returns the settings start-date subcommand
func StartDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-date [YYYY-MM-DD]",
		Short: "Show or set the internship start date",
		Long: `Without an argument, print the start date. With one, set it (admin only).
Both forms need a login.
Day numbers in reports and exports follow the new date immediately.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStartDate,
	}

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStartDate(cmd *cobra.Command, args []string) error {
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

	session, err := cliInstance.Session(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	verb := "Start date"
	if len(args) == 1 {
		if err := cliInstance.App.SettingsService.SetStartDate(ctx, session, args[0]); err != nil {
			return formatter.Fail(err)
		}
		verb = "✓ Start date set to"
	}

	startDate, err := cliInstance.App.SettingsService.StartDate(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		_, err = fmt.Fprintln(formatter.Writer(), startDate)
		return err
	}

	resp := StartDateResponse{StartDate: startDate}
	if startDate != "" {
		resp.FormattedDate = progress.FormatLong(startDate)
	}
	if formatter.JSON {
		return formatter.Success(resp)
	}

	if startDate == "" {
		_, err = fmt.Fprintln(formatter.Writer(), "No start date set")
		return err
	}
	_, err = fmt.Fprintf(formatter.Writer(), "%s %s (%s)\n", verb, resp.FormattedDate, startDate)
	return err
}

// ListCmd returns the settings list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every stored setting",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	settings, err := cliInstance.App.SettingsService.All(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.Success(settings)
	}

	w := formatter.Writer()
	for _, setting := range settings {
		if formatter.Quiet {
			_, err = fmt.Fprintf(w, "%s=%s\n", setting.Key, setting.Value)
		} else {
			_, err = fmt.Fprintf(w, "%s  %s\n", styles.Field(setting.Key, setting.Value),
				styles.SubtitleStyle.Render(humanize.RelTime(setting.UpdatedAt, cliInstance.App.Now(), "ago", "from now")))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
