package cli

import (
	"errors"

	"github.com/vk/speccheck/internal/app"
)

// Exit codes of the speccheck binary.
const (
	ExitOK         = 0
	ExitValidation = 1
	ExitUsage      = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// toExitError classifies err: failures of a validation stage exit with
// ExitValidation, everything else is a usage or configuration problem.
func toExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	code := ExitUsage
	var stageErr *app.StageError
	if errors.As(err, &stageErr) && !errors.Is(err, app.ErrConfig) {
		code = ExitValidation
	}
	return &ExitError{Code: code, Message: err.Error(), Err: err}
}
