package cs

import (
	"github.com/quarrybuild/quarry/internal/exeutils"
	"github.com/quarrybuild/quarry/internal/machine"
	"github.com/quarrybuild/quarry/internal/rspfile"
)

// MonoCompiler adapts the mono C# compiler (mcs). Its artifacts are not
// directly executable by the host loader and launch through the mono runtime.
type MonoCompiler struct {
	CsCompiler
}

// NewMonoCompiler returns an adapter for the mono compiler at the given invocation
func NewMonoCompiler(exelist []string, version string, forMachine machine.Choice, info *machine.Info, proc exeutils.Runner) *MonoCompiler {
	return &MonoCompiler{
		newCsCompiler(KindMono, exelist, version, forMachine, info, proc, "mono"),
	}
}

// RSPFileSyntax declares GCC style response file escaping
func (c *MonoCompiler) RSPFileSyntax() rspfile.Syntax {
	return rspfile.SyntaxGCC
}
