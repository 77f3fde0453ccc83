package fileutils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "file.txt")

	require.NoError(t, WriteFile(target, []byte("hello")))
	assert.True(t, FileExists(target))
	assert.True(t, TargetExists(target))
	assert.False(t, DirExists(target))

	b, err := ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestUniqueDir(t *testing.T) {
	base := t.TempDir()

	first, err := UniqueDir(base)
	require.NoError(t, err)
	second, err := UniqueDir(base)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, DirExists(first))
	assert.True(t, DirExists(second))
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "script.sh")
	require.NoError(t, WriteFile(target, []byte("#!/bin/sh\n")))

	assert.False(t, IsExecutable(target))
	require.NoError(t, os.Chmod(target, 0755))
	assert.True(t, IsExecutable(target))
}

func TestAbsoluteFrom(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix style paths")
	}
	assert.Equal(t, "/build/sub/lib", AbsoluteFrom("/build", "sub/lib"))
	assert.Equal(t, "/elsewhere/lib", AbsoluteFrom("/build", "/elsewhere/lib"))
	assert.Equal(t, "/build/lib", AbsoluteFrom("/build", "./sub/../lib"))
}
