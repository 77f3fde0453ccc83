package cs

import (
	"os/exec"
	"regexp"
	"strings"

	"github.com/quarrybuild/quarry/internal/errs"
	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/logging"
	"github.com/quarrybuild/quarry/internal/machine"
)

var versionPattern = regexp.MustCompile(`\d+(\.\d+)+`)

// searchVersion extracts the first dotted version number from a version banner
func searchVersion(text string) string {
	return versionPattern.FindString(text)
}

type candidate struct {
	binary      string
	versionArgs []string
}

var candidates = []candidate{
	{"mcs", []string{"--version"}},
	{"csc", []string{"-version"}},
	{"dotnet", []string{"--version"}},
}

// Detect probes the PATH for a usable C# compiler and constructs the matching
// adapter variant: mcs selects the mono variant, csc the Visual Studio
// variant and dotnet the SDK discovered variant. The first hit wins.
func Detect(forMachine machine.Choice, info *machine.Info, proc exeutils.Runner) (Compiler, error) {
	for _, cand := range candidates {
		binPath, err := exec.LookPath(cand.binary)
		if err != nil {
			continue
		}

		stdout, stderr, err := exeutils.ExecSimple(binPath, cand.versionArgs...)
		if err != nil {
			logging.Debug("Skipping %s, version query failed: %v", binPath, err)
			continue
		}
		version := searchVersion(stdout + stderr)
		if version == "" {
			logging.Debug("Skipping %s, no version in banner output", binPath)
			continue
		}

		switch cand.binary {
		case "mcs":
			return NewMonoCompiler([]string{binPath}, version, forMachine, info, proc), nil
		case "csc":
			return NewVisualStudioCsCompiler([]string{binPath}, version, forMachine, info, proc), nil
		default:
			// dotnet --version reports the active SDK; request that exact one.
			return NewDotnetCompiler([]string{binPath}, strings.TrimSpace(version), forMachine, info, proc)
		}
	}

	return nil, errs.New("no C# compiler found on PATH (tried mcs, csc, dotnet)")
}
