package cs

import (
	"fmt"
	"path/filepath"

	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/fileutils"
)

const (
	sanitySourceName   = "sanity.cs"
	sanityArtifactName = "sanity.exe"
)

const sanitySource = `public class Sanity {
    static public void Main () {
    }
}
`

func nameString(c Compiler) string {
	return fmt.Sprintf("%s %s", c.Kind(), c.Version())
}

// sanityCheck is the validation procedure shared by all variants: write a
// trivial program into workDir, compile it, and (when checkRunnable) execute
// the produced artifact. Both subprocess invocations run sequentially and
// block until process exit; the exit code is the sole verdict, output is
// only attached to failures for diagnostics.
func sanityCheck(c Compiler, proc exeutils.Runner, workDir string, checkRunnable bool) error {
	sourceName := filepath.Join(workDir, sanitySourceName)
	if err := fileutils.WriteFile(sourceName, []byte(sanitySource)); err != nil {
		return err
	}

	argv := append(c.Invocation(), c.AlwaysArgs()...)
	argv = append(argv, sanitySourceName)
	res, err := proc.Run(argv, workDir)
	if err != nil {
		return newUnusableError("C# compiler %s can not compile programs", nameString(c)).withWrapped(err)
	}
	if res.ExitCode != 0 {
		return newUnusableError("C# compiler %s can not compile programs", nameString(c)).withOutput(res.Stdout, res.Stderr)
	}

	if !checkRunnable {
		return nil
	}

	var cmdlist []string
	if c.Runner() != "" {
		cmdlist = []string{c.Runner(), sanityArtifactName}
	} else {
		cmdlist = []string{filepath.Join(workDir, sanityArtifactName)}
	}
	res, err = proc.Run(cmdlist, workDir)
	if err != nil {
		return newUnusableError("Executables created by C# compiler %s are not runnable", nameString(c)).withWrapped(err)
	}
	if res.ExitCode != 0 {
		return newUnusableError("Executables created by C# compiler %s are not runnable", nameString(c)).withOutput(res.Stdout, res.Stderr)
	}

	return nil
}
