// Package apperr holds the error values shared across the generator.
package apperr

import (
	"errors"
	"fmt"
)

// Exit statuses returned by the CLI.
const (
	ExitFailure    = 1
	ExitValidation = 2
)

var (
	ErrInvalidCloud    = errors.New("EVAL constraint: --cloud must be 'aws'")
	ErrMissingRegion   = errors.New("Missing --region")
	ErrUnknownPhase    = errors.New("unknown phase")
	ErrMissingTemplate = errors.New("missing template")

	// ErrUsage means help was shown instead of running a command.
	ErrUsage = errors.New("usage")
)

// ValidationError is a fatal input or precondition failure detected before
// any output is written.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Invalid wraps a sentinel in a ValidationError with a formatted message.
func Invalid(err error, format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...), Err: err}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ExitValidation
	}
	return ExitFailure
}
