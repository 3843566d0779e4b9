package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/internlog/internal/export"
	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
	"github.com/thenoetrevino/internlog/internal/services/auth"
	"github.com/thenoetrevino/internlog/internal/services/settings"
	"github.com/thenoetrevino/internlog/internal/services/task"
)

// errorKind maps a domain error to its output code, exit status and hint
type errorKind struct {
	err        error
	code       string
	exit       int
	suggestion string
}

var errorKinds = []errorKind{
	{auth.ErrMissingCredentials, "MISSING_CREDENTIALS", ExitAuth,
		"Pass --user and --password, or set INTERNLOG_AUTH_USER and INTERNLOG_AUTH_PASSWORD"},
	{auth.ErrInvalidCredentials, "INVALID_CREDENTIALS", ExitAuth, "Check the username and password"},
	{auth.ErrReadOnlySession, "READ_ONLY", ExitAuth, "Log in with an admin account to make changes"},
	{task.ErrEmptyTask, "EMPTY_TASK", ExitValidation, "Describe the work with --text"},
	{task.ErrInvalidDate, "INVALID_DATE", ExitValidation, "Dates use the form YYYY-MM-DD, e.g. 2024-01-31"},
	{settings.ErrInvalidStartDate, "INVALID_DATE", ExitValidation, "Dates use the form YYYY-MM-DD, e.g. 2024-01-31"},
	{task.ErrInvalidTaskID, "INVALID_TASK_ID", ExitValidation, "Task IDs are positive integers, see 'internlog task list'"},
	{task.ErrInvalidDayRange, "INVALID_DAY_RANGE", ExitValidation, "--min-day must not be greater than --max-day"},
	{models.ErrTaskNotFound, "TASK_NOT_FOUND", ExitNotFound, "Use 'internlog task list' to see existing tasks"},
	{task.ErrNothingToExport, "NOTHING_TO_EXPORT", ExitNotFound, "Save a task first with 'internlog task save'"},
	{models.ErrDuplicateDate, "DUPLICATE_DATE", ExitDataErr, ""},
	{export.ErrUnknownFormat, "INVALID_FORMAT", ExitUsage, "Use --format csv or --format json"},
}

// Classify returns the output code, exit status and suggestion for err
func Classify(err error) (code string, exit int, suggestion string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.code, kind.exit, kind.suggestion
		}
	}
	return "INTERNAL_ERROR", ExitError, ""
}

// Fail reports err through the formatter, logs it, and returns the
// CommandError the command should return from RunE.
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := Classify(err)
	return f.FailWith(code, exit, err, suggestion)
}

// FailWith is Fail with an explicit code and exit status
func (f *OutputFormatter) FailWith(code string, exit int, err error, suggestion string) error {
	if exit == ExitError {
		slog.Error("command failed", "code", code, "error", err)
	} else {
		slog.Debug("command rejected", "code", code, "error", err)
	}

	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to write error output", "error", fmtErr)
	}
	return &CommandError{ExitCode: exit, Code: code, Err: err}
}

// AddSessionFlags registers --user and --password on cmd
func AddSessionFlags(cmd *cobra.Command) {
	cmd.Flags().String("user", "", "Username (default from INTERNLOG_AUTH_USER)")
	cmd.Flags().String("password", "", "Password (default from INTERNLOG_AUTH_PASSWORD, prompted when omitted on a terminal)")
}

// Interactive reports whether stdin is attached to a terminal
var Interactive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptPassword asks for the password of username without echoing it
var PromptPassword = func(username string) (string, error) {
	var password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Password for %s", username)).
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).WithTheme(huh.ThemeCharm())
	err := form.Run()
	return password, err
}

// Confirm asks a yes/no question, defaulting to no
var Confirm = func(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeCharm())
	err := form.Run()
	return ok, err
}

// Session logs in with the credentials from the command's flags, falling back
// to the configured defaults. When the password is still missing and stdin is
// a terminal, it is prompted for.
func (c *CLI) Session(cmd *cobra.Command) (*auth.Session, error) {
	username, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")

	if username == "" && c.Config != nil {
		username = c.Config.Auth.User
	}
	if password == "" && c.Config != nil {
		password = c.Config.Auth.Password
	}

	if strings.TrimSpace(username) != "" && password == "" && Interactive() {
		entered, err := PromptPassword(username)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, auth.ErrMissingCredentials
			}
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		password = entered
	}

	return c.App.AuthService.Login(cmd.Context(), username, password)
}

// DateArg returns the --date flag, defaulting to today's date
func DateArg(cmd *cobra.Command, c *CLI) string {
	date, _ := cmd.Flags().GetString("date")
	if strings.TrimSpace(date) == "" {
		return progress.FormatDate(c.App.Now())
	}
	return date
}
