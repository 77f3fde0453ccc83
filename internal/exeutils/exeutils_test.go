package exeutils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	runner := NewRunner()

	res, err := runner.Run([]string{"sh", "-c", "echo out; echo err >&2"}, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)

	res, err = runner.Run([]string{"sh", "-c", "exit 3"}, t.TempDir())
	require.NoError(t, err, "non-zero exit is not an error")
	assert.Equal(t, 3, res.ExitCode)
}

func TestRunMissingBinary(t *testing.T) {
	runner := NewRunner()
	_, err := runner.Run([]string{"definitely-not-a-real-binary-quarry"}, "")
	assert.Error(t, err)
}

func TestRunCwd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires pwd")
	}
	dir := t.TempDir()
	runner := NewRunner()
	res, err := runner.Run([]string{"pwd", "-P"}, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.NotEmpty(t, res.Stdout)
}
