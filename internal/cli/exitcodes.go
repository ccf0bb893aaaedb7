package cli

import (
	"errors"

	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: database errors or any unexpected failure.
	ExitError = 1

	// ExitUsage indicates incorrect command usage: missing required flags,
	// invalid flag combinations, or unparseable argument values.
	ExitUsage = 2

	// ExitNotFound indicates a requested task or subtask doesn't exist.
	ExitNotFound = 3

	// ExitValidation indicates input that fails validation rules,
	// such as an empty title.
	ExitValidation = 4
)

// HandledError wraps an error whose message a formatter has already
// printed, so the top level only maps it to an exit code.
type HandledError struct {
	Err error
}

func (e *HandledError) Error() string { return e.Err.Error() }

func (e *HandledError) Unwrap() error { return e.Err }

// Handled marks err as already reported to the user.
func Handled(err error) error {
	return &HandledError{Err: err}
}

// ExitCodeForError maps service-layer errors to exit codes.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, taskservice.ErrTaskNotFound),
		errors.Is(err, taskservice.ErrSubtaskNotFound):
		return ExitNotFound
	case errors.Is(err, taskservice.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrInvalidSubtaskID):
		return ExitValidation
	default:
		return ExitError
	}
}
