package model

import "fmt"

// ExitCode defines the CLI exit codes. These codes let scripts and CI
// systems programmatically determine why a command failed.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitProjectExists indicates the target project directory already
	// exists. Nothing is written in this case.
	ExitProjectExists ExitCode = 2

	// ExitDockerNotRunning indicates the Docker daemon is not reachable.
	ExitDockerNotRunning ExitCode = 3

	// ExitConfigFailed indicates project generation failed: a generator
	// error, a fragment name collision, or a file write failure.
	ExitConfigFailed ExitCode = 4

	// ExitProjectNotFound indicates the named project directory does not
	// exist (start/stop/destroy on an unknown project).
	ExitProjectNotFound ExitCode = 5

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 6
)

// CLIError is an error that carries an exit code. The CLI layer unwraps it
// in Execute to select the process exit code; everything below the CLI just
// returns it like any other error.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError without an underlying cause.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError wrapping an underlying error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
