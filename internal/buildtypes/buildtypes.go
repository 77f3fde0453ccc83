// Package buildtypes holds the closed set of named build types and the
// combined optimization/debug flags each maps to for managed compilers.
package buildtypes

import (
	"github.com/thoas/go-funk"

	"github.com/quarrybuild/quarry/internal/errs"
)

// BuildType tracks the named build presets a project can be configured with.
type BuildType int

// BuildType constants are provided for safety/reference.
const (
	Plain BuildType = iota
	Debug
	DebugOptimized
	Release
	MinSize
	Custom
)

type buildTypeData struct {
	name string
	args []string
}

var lookup = [...]buildTypeData{
	{"plain", []string{}},
	{"debug", []string{"-debug"}},
	{"debugoptimized", []string{"-debug", "-optimize+"}},
	{"release", []string{"-optimize+"}},
	{"minsize", []string{}},
	{"custom", []string{}},
}

// Names returns the names of all recognized build types
func Names() []string {
	names := make([]string, 0, len(lookup))
	for _, data := range lookup {
		names = append(names, data.name)
	}
	return names
}

// MakeByName will retrieve a build type by a given name. The second return
// value reports whether the name was recognized.
func MakeByName(name string) (BuildType, bool) {
	for i, data := range lookup {
		if data.name == name {
			return BuildType(i), true
		}
	}
	return Plain, false
}

// Recognized reports whether t is a member of the closed build type set
func (t BuildType) Recognized() bool {
	return t >= 0 && int(t) < len(lookup)
}

func (t BuildType) data() buildTypeData {
	if !t.Recognized() {
		// An unrecognized build type is a contract violation by the caller,
		// not an environmental condition.
		panic(errs.New("unrecognized build type: %d", int(t)))
	}
	return lookup[t]
}

// String implements the fmt.Stringer interface
func (t BuildType) String() string {
	return t.data().name
}

// Args returns the compiler flags for this build type. The returned slice is
// a fresh copy, safe for the caller to modify.
func (t BuildType) Args() []string {
	src := t.data().args
	args := make([]string, len(src))
	copy(args, src)
	return args
}

// MarshalYAML implements the yaml.Marshaler interface
func (t BuildType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (t *BuildType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	if !funk.Contains(Names(), name) {
		return errs.New("cannot unmarshal build type: %q", name)
	}
	*t, _ = MakeByName(name)
	return nil
}
