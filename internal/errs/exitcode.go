package errs

import "errors"

// ExitCodeable is implemented by errors that carry a process exit code
type ExitCodeable interface {
	ExitCode() int
}

type ExitCode struct {
	code       int
	wrappedErr error
}

// WrapExitCode wraps an error with an exit code that the command runner should exit with
func WrapExitCode(err error, code int) error {
	return &ExitCode{code, err}
}

func (e *ExitCode) Error() string {
	return "ExitCode"
}

func (e *ExitCode) Unwrap() error {
	return e.wrappedErr
}

func (e *ExitCode) ExitCode() int {
	return e.code
}

// UnwrapExitCode returns the exit code carried by the given error chain, 0 for
// nil errors and 1 for errors that do not carry a code.
func UnwrapExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
