package cs

import (
	"github.com/quarrybuild/quarry/internal/buildtypes"
	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/machine"
	"github.com/quarrybuild/quarry/internal/rspfile"
)

// VisualStudioCsCompiler adapts the Visual Studio C# compiler (csc)
type VisualStudioCsCompiler struct {
	CsCompiler
}

// NewVisualStudioCsCompiler returns an adapter for csc at the given invocation
func NewVisualStudioCsCompiler(exelist []string, version string, forMachine machine.Choice, info *machine.Info, proc exeutils.Runner) *VisualStudioCsCompiler {
	return &VisualStudioCsCompiler{
		newCsCompiler(KindVisualStudio, exelist, version, forMachine, info, proc, ""),
	}
}

// BuildTypeArgs substitutes the portable debug format for the bare -debug
// flag on non-Windows targets. The bare flag emits Windows-native PDB data
// that is unusable anywhere else.
func (c *VisualStudioCsCompiler) BuildTypeArgs(buildType buildtypes.BuildType) []string {
	res := c.CsCompiler.BuildTypeArgs(buildType)
	if !c.info.IsWindowsLike() {
		for i, flag := range res {
			if flag == "-debug" {
				res[i] = "-debug:portable"
			}
		}
	}
	return res
}

// RSPFileSyntax declares MSVC style response file escaping
func (c *VisualStudioCsCompiler) RSPFileSyntax() rspfile.Syntax {
	return rspfile.SyntaxMSVC
}
