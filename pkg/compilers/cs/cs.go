// Package cs implements the C# toolchain adapters: one uniform contract for
// rendering compiler argument lists and validating that a configured
// toolchain is usable, with variants for the mono, Visual Studio and .NET
// SDK compilers.
package cs

import (
	"github.com/quarrybuild/quarry/internal/buildtypes"
	"github.com/quarrybuild/quarry/internal/errs"
	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/fileutils"
	"github.com/quarrybuild/quarry/internal/machine"
	"github.com/quarrybuild/quarry/internal/rspfile"
)

// Kind identifies the concrete compiler variant behind an adapter
type Kind int

const (
	// KindMono is the mono compiler (mcs); artifacts launch through the mono runtime
	KindMono Kind = iota
	// KindVisualStudio is the Visual Studio compiler (csc)
	KindVisualStudio
	// KindDotnet is the .NET SDK hosted compiler, located through SDK discovery
	KindDotnet
)

func (k Kind) String() string {
	switch k {
	case KindVisualStudio:
		return "csc"
	case KindDotnet:
		return "dotnet"
	default:
		return "mono"
	}
}

// Compiler is the uniform contract every C# toolchain adapter satisfies. All
// operations are pure argument rendering except SanityCheck, which spawns
// subprocesses.
type Compiler interface {
	// Kind returns the variant identity, used for display and routing
	Kind() Kind

	// Version returns the version label reported by the toolchain. It is
	// opaque: only used for display and SDK path resolution.
	Version() string

	// Invocation returns the executable path plus any fixed prefix arguments
	Invocation() []string

	// Runner names the executable required to launch produced artifacts, or
	// returns an empty string when artifacts are natively executable.
	Runner() string

	// DisplayLanguage returns the human readable language name
	DisplayLanguage() string

	// AlwaysArgs returns flags unconditionally prepended to every invocation
	AlwaysArgs() []string

	// LinkerAlwaysArgs mirrors AlwaysArgs; this family links via the compiler
	LinkerAlwaysArgs() []string

	// OutputArgs renders the flag tying the primary output to fname
	OutputArgs(fname string) []string

	// LinkArgs renders the flag referencing a single library/assembly
	LinkArgs(fname string) []string

	// WerrorArgs returns the flag escalating warnings to errors
	WerrorArgs() []string

	// PicArgs returns nothing; position independent code is not a concept here
	PicArgs() []string

	// DebugArgs returns the debug symbol flag when enabled
	DebugArgs(enabled bool) []string

	// OptimizationArgs maps an optimization level from the closed set
	// {"0", "g", "1", "2", "3", "s"} to flags. Unknown levels panic.
	OptimizationArgs(level string) []string

	// BuildTypeArgs returns the combined flags for a named build type
	BuildTypeArgs(buildType buildtypes.BuildType) []string

	// NeedsStaticLinker is false for every variant: link steps go through the
	// compiler invocation itself, never a separate static linker.
	NeedsStaticLinker() bool

	// PchUseArgs returns nothing; precompiled headers are not a concept here
	PchUseArgs(pchDir, header string) []string

	// PchName returns an empty string; precompiled headers are not a concept here
	PchName(header string) string

	// AbsolutePathArgs returns a copy of args in which the path portion of
	// every library search path or library flag is resolved against buildDir
	AbsolutePathArgs(args []string, buildDir string) []string

	// RSPFileSyntax declares the response file convention for this toolchain
	RSPFileSyntax() rspfile.Syntax

	// SanityCheck validates the toolchain by compiling (and usually running)
	// a trivial program inside workDir. The caller owns workDir and must not
	// share it between concurrent checks.
	SanityCheck(workDir string) error
}

var (
	_ Compiler = (*CsCompiler)(nil)
	_ Compiler = (*MonoCompiler)(nil)
	_ Compiler = (*VisualStudioCsCompiler)(nil)
	_ Compiler = (*DotnetCompiler)(nil)
)

var csOptimizationArgs = map[string][]string{
	"0": {},
	"g": {},
	"1": {"-optimize+"},
	"2": {"-optimize+"},
	"3": {"-optimize+"},
	"s": {"-optimize+"},
}

// CsCompiler carries the behavior shared by all C# toolchain variants.
// Instances are immutable after construction; the pure rendering operations
// are safe for concurrent use.
type CsCompiler struct {
	exelist    []string
	version    string
	forMachine machine.Choice
	info       *machine.Info
	runner     string
	kind       Kind
	proc       exeutils.Runner
}

func newCsCompiler(kind Kind, exelist []string, version string, forMachine machine.Choice, info *machine.Info, proc exeutils.Runner, runner string) CsCompiler {
	if len(exelist) == 0 {
		panic(errs.New("compiler invocation cannot be empty"))
	}
	return CsCompiler{
		exelist:    exelist,
		version:    version,
		forMachine: forMachine,
		info:       info,
		runner:     runner,
		kind:       kind,
		proc:       proc,
	}
}

// Kind returns the variant identity
func (c *CsCompiler) Kind() Kind {
	return c.kind
}

// Version returns the version label reported by the toolchain
func (c *CsCompiler) Version() string {
	return c.version
}

// ForMachine returns which machine the produced artifacts run on
func (c *CsCompiler) ForMachine() machine.Choice {
	return c.forMachine
}

// Invocation returns a copy of the executable path plus fixed prefix arguments
func (c *CsCompiler) Invocation() []string {
	inv := make([]string, len(c.exelist))
	copy(inv, c.exelist)
	return inv
}

// Runner names the executable required to launch produced artifacts
func (c *CsCompiler) Runner() string {
	return c.runner
}

// DisplayLanguage returns the human readable language name
func (c *CsCompiler) DisplayLanguage() string {
	return "C sharp"
}

// AlwaysArgs returns flags unconditionally prepended to every invocation
func (c *CsCompiler) AlwaysArgs() []string {
	return []string{"/nologo"}
}

// LinkerAlwaysArgs mirrors AlwaysArgs, compiling and linking are one invocation
func (c *CsCompiler) LinkerAlwaysArgs() []string {
	return []string{"/nologo"}
}

// OutputArgs renders the flag tying the primary output to fname
func (c *CsCompiler) OutputArgs(fname string) []string {
	return []string{"-out:" + fname}
}

// LinkArgs renders the flag referencing a single library/assembly
func (c *CsCompiler) LinkArgs(fname string) []string {
	return []string{"-r:" + fname}
}

// WerrorArgs returns the flag escalating warnings to errors
func (c *CsCompiler) WerrorArgs() []string {
	return []string{"-warnaserror"}
}

// PicArgs returns nothing; position independent code is not a concept here
func (c *CsCompiler) PicArgs() []string {
	return []string{}
}

// DebugArgs returns the debug symbol flag when enabled
func (c *CsCompiler) DebugArgs(enabled bool) []string {
	if enabled {
		return []string{"-debug"}
	}
	return []string{}
}

// OptimizationArgs maps an optimization level to flags, panicking on levels
// outside the closed {"0", "g", "1", "2", "3", "s"} set.
func (c *CsCompiler) OptimizationArgs(level string) []string {
	src, ok := csOptimizationArgs[level]
	if !ok {
		panic(errs.New("unrecognized optimization level: %q", level))
	}
	args := make([]string, len(src))
	copy(args, src)
	return args
}

// BuildTypeArgs returns the combined flags for a named build type
func (c *CsCompiler) BuildTypeArgs(buildType buildtypes.BuildType) []string {
	return buildType.Args()
}

// NeedsStaticLinker is false: linking happens via the compiler invocation
func (c *CsCompiler) NeedsStaticLinker() bool {
	return false
}

// PchUseArgs returns nothing; precompiled headers are not a concept here
func (c *CsCompiler) PchUseArgs(pchDir, header string) []string {
	return []string{}
}

// PchName returns an empty string; precompiled headers are not a concept here
func (c *CsCompiler) PchName(header string) string {
	return ""
}

// AbsolutePathArgs returns a copy of args in which the path portion of every
// -L and -lib: entry is resolved against buildDir. Order and non-matching
// entries are preserved.
func (c *CsCompiler) AbsolutePathArgs(args []string, buildDir string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		switch {
		case len(arg) >= 2 && arg[:2] == "-L":
			result[i] = arg[:2] + fileutils.AbsoluteFrom(buildDir, arg[2:])
		case len(arg) >= 5 && arg[:5] == "-lib:":
			result[i] = arg[:5] + fileutils.AbsoluteFrom(buildDir, arg[5:])
		default:
			result[i] = arg
		}
	}
	return result
}

// RSPFileSyntax declares the response file convention for this toolchain
func (c *CsCompiler) RSPFileSyntax() rspfile.Syntax {
	return rspfile.SyntaxGCC
}

// SanityCheck compiles and runs a trivial program inside workDir
func (c *CsCompiler) SanityCheck(workDir string) error {
	return sanityCheck(c, c.proc, workDir, true)
}
