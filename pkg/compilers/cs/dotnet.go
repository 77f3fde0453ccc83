package cs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blang/semver"

	"github.com/quarrybuild/quarry/internal/errs"
	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/logging"
	"github.com/quarrybuild/quarry/internal/machine"
	"github.com/quarrybuild/quarry/internal/rspfile"
)

const netCoreRefPack = "Microsoft.NETCore.App.Ref"

// DotnetCompiler adapts the C# compiler hosted inside a .NET SDK. It is not
// invoked from a fixed location: construction queries the dotnet host for
// installed SDKs, selects the one matching the requested version, and points
// the invocation at the csc.dll nested under it. Artifacts reference a
// versioned framework reference pack explicitly.
type DotnetCompiler struct {
	CsCompiler

	packsDir         string
	runtimeVersion   string
	frameworkMoniker string
}

// NewDotnetCompiler discovers the SDK matching the requested version and
// returns an adapter for its compiler. When no installed SDK matches, it
// fails with an UnusableError rather than falling back to another version.
func NewDotnetCompiler(exelist []string, version string, forMachine machine.Choice, info *machine.Info, proc exeutils.Runner) (*DotnetCompiler, error) {
	if len(exelist) == 0 {
		return nil, errs.New("compiler invocation cannot be empty")
	}

	res, err := proc.Run(append(append([]string{}, exelist...), "--list-sdks"), "")
	if err != nil {
		return nil, newUnusableError("dotnet host %s can not list SDKs", exelist[0]).withWrapped(err)
	}
	if res.ExitCode != 0 {
		return nil, newUnusableError("dotnet host %s can not list SDKs", exelist[0]).withOutput(res.Stdout, res.Stderr)
	}

	sdkVersion, sdkDir, err := selectSDK(res.Stdout, version)
	if err != nil {
		return nil, err
	}
	logging.Debug("Selected .NET SDK %s at %s", sdkVersion, sdkDir)

	compilerPath := filepath.Join(sdkDir, sdkVersion, "Roslyn", "bincore", "csc.dll")
	invocation := append(append([]string{}, exelist...), compilerPath)

	// Reference packs live beside the sdk directory.
	// See https://github.com/dotnet/designs/blob/main/accepted/2019/targeting-packs-and-runtime-packs.md
	packsDir := filepath.Clean(filepath.Join(sdkDir, "..", "packs"))

	sdkSemver, err := semver.ParseTolerant(sdkVersion)
	if err != nil {
		return nil, newUnusableError("can not parse .NET SDK version %q", sdkVersion).withWrapped(err)
	}

	runtimeVersion, err := selectRuntimePack(packsDir, sdkSemver)
	if err != nil {
		return nil, err
	}

	c := &DotnetCompiler{
		CsCompiler:       newCsCompiler(KindDotnet, invocation, sdkVersion, forMachine, info, proc, "dotnet"),
		packsDir:         packsDir,
		runtimeVersion:   runtimeVersion,
		frameworkMoniker: fmt.Sprintf("net%d.%d", sdkSemver.Major, sdkSemver.Minor),
	}
	return c, nil
}

// selectSDK parses `dotnet --list-sdks` output, whose lines have the shape
// `6.0.301 [C:\Program Files\dotnet\sdk]`, and returns the version and sdk
// directory of the entry matching the requested version.
func selectSDK(listing, version string) (string, string, error) {
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, version) {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			continue
		}
		sdkDir := strings.Trim(strings.TrimSpace(fields[1]), "[]")
		if sdkDir == "" {
			continue
		}
		return fields[0], sdkDir, nil
	}
	return "", "", newUnusableError("no installed .NET SDK matches version %q", version)
}

// selectRuntimePack returns the newest installed framework reference pack
// whose major version matches the SDK's.
func selectRuntimePack(packsDir string, sdkVersion semver.Version) (string, error) {
	refRoot := filepath.Join(packsDir, netCoreRefPack)
	entries, err := os.ReadDir(refRoot)
	if err != nil {
		return "", newUnusableError("can not read framework reference packs at %s", refRoot).withWrapped(err)
	}

	var best *semver.Version
	var bestName string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := semver.ParseTolerant(entry.Name())
		if err != nil {
			continue
		}
		if v.Major != sdkVersion.Major {
			continue
		}
		if best == nil || v.GT(*best) {
			v := v
			best = &v
			bestName = entry.Name()
		}
	}
	if best == nil {
		return "", newUnusableError("no framework reference pack for .NET %d installed at %s", sdkVersion.Major, refRoot)
	}
	return bestName, nil
}

// PacksDirectory returns the resolved framework reference pack root
func (c *DotnetCompiler) PacksDirectory() string {
	return c.packsDir
}

// RuntimeVersion returns the selected framework reference pack version
func (c *DotnetCompiler) RuntimeVersion() string {
	return c.runtimeVersion
}

// FrameworkMoniker returns the target framework moniker, e.g. "net6.0"
func (c *DotnetCompiler) FrameworkMoniker() string {
	return c.frameworkMoniker
}

// AlwaysArgs references every framework assembly of the selected reference
// pack in addition to the quiet flag: the reference assembly model resolves
// nothing implicitly.
func (c *DotnetCompiler) AlwaysArgs() []string {
	refDir := filepath.Join(c.packsDir, netCoreRefPack, c.runtimeVersion, "ref", c.frameworkMoniker)
	args := make([]string, 0, len(netCoreRefAssemblies)+1)
	args = append(args, "/nologo")
	for _, name := range netCoreRefAssemblies {
		args = append(args, "/reference:"+filepath.Join(refDir, name))
	}
	return args
}

// OutputArgs additionally treats reference types as non-nullable by default
func (c *DotnetCompiler) OutputArgs(fname string) []string {
	return []string{"-out:" + fname, "/nullable:enable"}
}

// SanityCheck only verifies the compile step. Compiling executables with the
// .NET csc does not reliably yield something runnable in place, so the
// execute half of the check is skipped.
func (c *DotnetCompiler) SanityCheck(workDir string) error {
	return sanityCheck(c, c.proc, workDir, false)
}

// RSPFileSyntax declares MSVC style response file escaping
func (c *DotnetCompiler) RSPFileSyntax() rspfile.Syntax {
	return rspfile.SyntaxMSVC
}
