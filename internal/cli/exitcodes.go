package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unreadable files, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown export formats,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task id not found, nothing to export.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or conflicting stored data.
	// Use for: A second task for an already used date.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty task text, malformed dates, bad day ranges.
	ExitValidation = 5

	// ExitAuth indicates the credentials were missing, wrong, or read-only.
	ExitAuth = 6
)

// CommandError is returned from a command's RunE once the failure has been
// reported to the user. main turns it into the process exit status.
type CommandError struct {
	ExitCode int
	Code     string
	Err      error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCodeOf returns the process exit status for an error returned by a command
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitError
}

// Reported reports whether err has already been written by an OutputFormatter
func Reported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
