package cs

import (
	"errors"
	"fmt"
)

// UnusableError reports that a toolchain cannot be trusted for real builds:
// SDK discovery failed at construction, or the sanity check failed at the
// compile or execute step. It is always fatal to the calling build
// configuration; no retry or fallback is attempted.
type UnusableError struct {
	msg     string
	stdout  string
	stderr  string
	wrapped error
}

func newUnusableError(msg string, args ...interface{}) *UnusableError {
	return &UnusableError{msg: fmt.Sprintf(msg, args...)}
}

func (e *UnusableError) withOutput(stdout, stderr string) *UnusableError {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

func (e *UnusableError) withWrapped(err error) *UnusableError {
	e.wrapped = err
	return e
}

func (e *UnusableError) Error() string {
	return e.msg
}

func (e *UnusableError) Unwrap() error {
	return e.wrapped
}

// Stdout returns the captured standard output of the failing subprocess, if any
func (e *UnusableError) Stdout() string {
	return e.stdout
}

// Stderr returns the captured standard error of the failing subprocess, if any
func (e *UnusableError) Stderr() string {
	return e.stderr
}

// IsUnusable reports whether the given error chain marks a toolchain unusable
func IsUnusable(err error) bool {
	var uerr *UnusableError
	return errors.As(err, &uerr)
}
