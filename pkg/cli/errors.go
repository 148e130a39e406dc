package cli

import "fmt"

// Exit codes used by pathwarden commands. ExitViolation lets callers in
// scripts distinguish a denied operation from a malformed invocation.
const (
	ExitUsage     = 1
	ExitViolation = 2
)

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitError carries a specific process exit code alongside the error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}
