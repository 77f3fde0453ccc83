package fileutils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/quarrybuild/quarry/internal/errs"
)

// FileMode is the mode used for created files
const FileMode = 0644

// DirMode is the mode used for created directories
const DirMode = os.ModePerm

// TargetExists checks if the given file or directory exists
func TargetExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExists checks if the given path exists and is a regular file
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// DirExists checks if the given path exists and is a directory
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// IsExecutable determines if the file at the given path has any execute permissions.
// This function does not care about the current user's permissions to execute the file.
func IsExecutable(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.Mode()&(0111) > 0
}

// Mkdir is a small helper function to create a directory if it doesnt already exist
func Mkdir(path string, subpath ...string) error {
	if len(subpath) > 0 {
		subpathStr := filepath.Join(subpath...)
		path = filepath.Join(path, subpathStr)
	}
	if err := os.MkdirAll(path, DirMode); err != nil {
		return errs.Wrap(err, "MkdirAll failed for path: %s", path)
	}
	return nil
}

// WriteFile writes data to a file, creating it if necessary
func WriteFile(path string, data []byte) error {
	if err := Mkdir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, FileMode); err != nil {
		return errs.Wrap(err, "WriteFile %s failed", path)
	}
	return nil
}

// ReadFile reads the content of a file
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "ReadFile %s failed", path)
	}
	return b, nil
}

// UniqueDir creates and returns a uniquely named directory underneath base
func UniqueDir(base string) (string, error) {
	path := filepath.Join(base, uuid.New().String())
	if err := Mkdir(path); err != nil {
		return "", err
	}
	return path, nil
}

// TempDirUnsafe returns a temp path or panics if it cannot be created.
// This is for use in tests, do not use it outside tests!
func TempDirUnsafe() string {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(errs.Wrap(err, "Could not create tempDir"))
	}
	return dir
}

// AbsoluteFrom joins the given path to the base directory if it is not
// already absolute, and normalizes the result.
func AbsoluteFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}
