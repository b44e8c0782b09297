package cli

import "fmt"

// UsageErrorCode is the exit code for errors in this layer's own input
// validation (unknown targets, malformed invocations).
const UsageErrorCode = 2

// ExitError tells main to exit with a specific code. Used to mirror the
// delegate test framework's exit code and to mark usage errors.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError wraps err with an explicit process exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewUsageError wraps err with the usage error exit code.
func NewUsageError(err error) *ExitError {
	return &ExitError{Code: UsageErrorCode, Err: err}
}
