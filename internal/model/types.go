package model

import "fmt"

// ExitCode defines the CLI exit codes. When the external publish process
// is actually run, its own exit code is propagated verbatim and these
// constants do not apply; they cover failures raised before the process
// is launched.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully. Dry runs
	// and help output exit with this code.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, including
	// a failure to launch the external toolchain at all.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates a caller-supplied configuration invariant
	// was violated (e.g., a non-C# file listed for symbol stripping, or an
	// unreadable settings/matrix file). Raised before any mutating action.
	ExitConfigError ExitCode = 2

	// ExitOutputPathConflict indicates the output path exists but is a
	// regular file rather than a directory. Raised before any cleanup so
	// no destructive directory operation ever targets the wrong path.
	ExitOutputPathConflict ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
