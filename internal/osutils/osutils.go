package osutils

import (
	"os/exec"

	"github.com/quarrybuild/quarry/internal/logging"
)

// CmdExitCode returns the exit code of a command in a platform agnostic way
func CmdExitCode(cmd *exec.Cmd) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("Could not get exit code, so returning 128 instead (this is non-fatal, but should be resolved), actual error: %v", r)
			code = 128
		}
	}()

	type Status interface {
		ExitStatus() int
	}
	return cmd.ProcessState.Sys().(Status).ExitStatus()
}
