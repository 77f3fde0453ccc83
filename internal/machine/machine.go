// Package machine describes the machines involved in a build: the machine the
// build runs on and the machine the produced artifacts run on.
package machine

import "runtime"

// Choice identifies which machine a toolchain targets
type Choice int

const (
	// Build targets the machine performing the build
	Build Choice = iota
	// Host targets the machine the built artifacts will run on
	Host
)

func (c Choice) String() string {
	if c == Host {
		return "host"
	}
	return "build"
}

// Info is an opaque descriptor of one machine, queried by toolchain adapters
// for platform predicates only.
type Info struct {
	// System is the OS identity, using GOOS naming ("windows", "linux", "darwin", ...)
	System string

	// Arch is the processor architecture, using GOARCH naming
	Arch string
}

// Current returns the Info describing the machine this process runs on
func Current() *Info {
	return &Info{
		System: runtime.GOOS,
		Arch:   runtime.GOARCH,
	}
}

// IsWindowsLike reports whether artifacts for this machine use Windows
// conventions (native PDB debug data, PE loaders, ...)
func (i *Info) IsWindowsLike() bool {
	return i.System == "windows"
}
