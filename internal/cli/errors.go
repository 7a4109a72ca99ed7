package cli

import "github.com/specialistvlad/imgconv/internal/app"

// Usage errors. Both are reported as an ExitError with code 2.
var (
	ErrInvalidLogLevel  = app.ErrInvalidLogLevel
	ErrInvalidLogFormat = app.ErrInvalidLogFormat
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

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error(), Err: err}
}
