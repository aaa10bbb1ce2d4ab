// Package exitcode maps errors to process exit codes following sysexits.h conventions.
package exitcode

import (
	"errors"
)

// Exit codes following sysexits.h conventions.
const (
	// ExitOK indicates every case ran and was caught.
	ExitOK = 0

	// ExitUsage indicates command line usage error (unknown flag, kind or format).
	ExitUsage = 64

	// ExitSoftware indicates a failure escaped its catching region or a trigger did not fail.
	ExitSoftware = 70

	// ExitIOErr indicates output could not be written.
	ExitIOErr = 74
)

// Error attaches an exit code to an error.
type Error struct {
	Code int   // Process exit code
	Err  error // Underlying error
}

// New wraps err with an exit code. A nil err stays nil.
func New(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: err}
}

// Error returns the underlying error message.
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// FromError returns the exit code for err: ExitOK for nil, the attached
// code when err carries one, ExitSoftware otherwise.
func FromError(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitSoftware
}
