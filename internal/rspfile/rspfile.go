// Package rspfile writes @-files (response files) for toolchains whose
// argument lists can exceed command line length limits. Different toolchains
// expect different quoting conventions inside the file, identified by Syntax.
package rspfile

import (
	"strings"

	"github.com/quarrybuild/quarry/internal/fileutils"
	"github.com/quarrybuild/quarry/internal/osutils"
)

// Syntax identifies the quoting/escaping convention of a response file
type Syntax int

const (
	// SyntaxGCC quotes arguments the way GCC style tools expect
	SyntaxGCC Syntax = iota
	// SyntaxMSVC quotes arguments the way MSVC style tools expect
	SyntaxMSVC
)

func (s Syntax) String() string {
	if s == SyntaxMSVC {
		return "msvc"
	}
	return "gcc"
}

func escaper(s Syntax) *osutils.ShellEscape {
	if s == SyntaxMSVC {
		return osutils.NewBatchEscaper()
	}
	return osutils.NewBashEscaper()
}

// Quote renders a single argument the way the given syntax expects
func Quote(arg string, syntax Syntax) string {
	return escaper(syntax).Quote(arg)
}

// Render produces the content of a response file for the given arguments,
// one argument per line.
func Render(args []string, syntax Syntax) string {
	esc := escaper(syntax)
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		lines = append(lines, esc.Quote(arg))
	}
	return strings.Join(lines, "\n") + "\n"
}

// Write writes the given arguments to a response file at path
func Write(path string, args []string, syntax Syntax) error {
	return fileutils.WriteFile(path, []byte(Render(args, syntax)))
}
