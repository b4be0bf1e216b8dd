package model

import (
	"errors"
	"fmt"
)

type ExitCode int

func (e ExitCode) String() string {
	return fmt.Sprintf("Exit code %d", e)
}

const (
	NoError ExitCode = iota
	UnknownError
	UserCanceled
	// NoTerminal is used when terminal mode is requested without a tty.
	NoTerminal
)

// ExitError carries a process exit code up to main without calling os.Exit in
// lower layers, so deferred cleanup (terminal restore, cache writes) still runs.
type ExitError struct {
	Code ExitCode
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %v", e.Code.String(), e.Err)
}

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewExitError constructs an ExitError with the provided code and cause.
func NewExitError(code ExitCode, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromError extracts an ExitCode from err. Errors that are not an
// ExitError map to UnknownError.
func ExitCodeFromError(err error) (ExitCode, error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Err
	}
	return UnknownError, err
}
