package stacktrace

import (
	"fmt"
	"runtime"
	"strings"
)

// Stacktrace represents a stacktrace
type Stacktrace struct {
	Frames []Frame
}

// Frame is a single frame in a stacktrace
type Frame struct {
	// Func is the name of the function this frame belongs to
	Func string

	// Path is the path of the file this frame belongs to
	Path string

	// Line is the line number this frame belongs to
	Line int
}

// String returns a human readable version of the stacktrace
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s:%s:%d", frame.Path, frame.Func, frame.Line))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace for the calling frame
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip returns a stacktrace that excludes frames belonging to the given files
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, 100)
	n := runtime.Callers(0, pc)
	if n == 0 {
		return stacktrace
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	skipFiles = append(skipFiles, rtCurrentFile()) // skip self

	for {
		frame, more := frames.Next()

		skip := false
		for _, skipFile := range skipFiles {
			if frame.File == skipFile {
				skip = true
				break
			}
		}
		if !skip {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func: frame.Function,
				Path: frame.File,
				Line: frame.Line,
			})
		}

		if !more {
			break
		}
	}

	return stacktrace
}

func rtCurrentFile() string {
	_, file, _, _ := runtime.Caller(0)
	return file
}
