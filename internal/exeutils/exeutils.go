// Package exeutils provides the process spawning primitive used by the
// toolchain adapters: run an argv in a working directory, wait for it, and
// report its exit code together with captured output.
package exeutils

import (
	"bytes"
	"os/exec"

	"github.com/quarrybuild/quarry/internal/errs"
	"github.com/quarrybuild/quarry/internal/logging"
	"github.com/quarrybuild/quarry/internal/osutils"
)

// Result holds the outcome of a finished subprocess
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs a command synchronously and reports its exit code. Implementers
// must only return an error when the process could not be started or waited
// on at all; a non-zero exit is a Result, not an error.
type Runner interface {
	Run(argv []string, cwd string) (*Result, error)
}

// OSRunner is the default Runner, backed by os/exec
type OSRunner struct{}

// NewRunner returns the default process runner
func NewRunner() *OSRunner {
	return &OSRunner{}
}

// Run executes the given argv with the given working directory and waits for completion
func (r *OSRunner) Run(argv []string, cwd string) (*Result, error) {
	if len(argv) == 0 {
		return nil, errs.New("cannot run empty command")
	}
	logging.Debug("Executing command: %v (cwd: %s)", argv, cwd)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cwd

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, errs.Wrap(err, "Could not run %s", argv[0])
		}
		logging.Debug("Command %s exited non-zero: %v", argv[0], err)
	}

	return &Result{
		ExitCode: osutils.CmdExitCode(cmd),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// ExecSimple runs the given command and returns its stdout and stderr, erroring on non-zero exit
func ExecSimple(bin string, args ...string) (string, string, error) {
	return ExecSimpleFromDir("", bin, args...)
}

// ExecSimpleFromDir is like ExecSimple but runs from the given directory
func ExecSimpleFromDir(dir, bin string, args ...string) (string, string, error) {
	c := exec.Command(bin, args...)
	if dir != "" {
		c.Dir = dir
	}
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return stdout.String(), stderr.String(), errs.Wrap(err, "Exec failed")
	}

	return stdout.String(), stderr.String(), nil
}
