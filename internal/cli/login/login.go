package login

import (
	"fmt"
	"log/slog"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/internlog/internal/cli"
	"github.com/thenoetrevino/internlog/internal/cli/styles"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials and show the role",
		Long: `Check a username and password against the stored users and print the role.
Nothing is remembered between commands: every command that changes data
takes --user and --password (or INTERNLOG_AUTH_USER / INTERNLOG_AUTH_PASSWORD).`,
		RunE: runLogin,
	}

	cli.AddSessionFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
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

	if formatter.Quiet {
		_, err = fmt.Fprintln(formatter.Writer(), session.Role)
		return err
	}
	if formatter.JSON {
		return formatter.Success(session)
	}

	access := "read-only access"
	if session.CanEdit() {
		access = "full access"
	}
	_, err = lipgloss.Fprintln(formatter.Writer(),
		styles.SuccessStyle.Render("✓"),
		fmt.Sprintf("Logged in as %s (%s, %s)", session.Username, session.Role, access),
	)
	return err
}
