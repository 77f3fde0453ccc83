package cs

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarrybuild/quarry/internal/buildtypes"
	"github.com/quarrybuild/quarry/internal/machine"
	"github.com/quarrybuild/quarry/internal/rspfile"
)

func newTestMono() *MonoCompiler {
	return NewMonoCompiler([]string{"mcs"}, "6.12.0", machine.Host, &machine.Info{System: "linux"}, &fakeRunner{})
}

func newTestVisualStudio(system string) *VisualStudioCsCompiler {
	return NewVisualStudioCsCompiler([]string{"csc"}, "3.9.0", machine.Host, &machine.Info{System: system}, &fakeRunner{})
}

func TestOptimizationArgs(t *testing.T) {
	c := newTestMono()

	for _, level := range []string{"0", "g"} {
		assert.Empty(t, c.OptimizationArgs(level), "level %s", level)
	}
	for _, level := range []string{"1", "2", "3", "s"} {
		assert.Equal(t, []string{"-optimize+"}, c.OptimizationArgs(level), "level %s", level)
	}

	assert.Panics(t, func() { c.OptimizationArgs("9") })
	assert.Panics(t, func() { c.OptimizationArgs("fast") })
}

func TestAlwaysAndLinkArgs(t *testing.T) {
	c := newTestMono()

	assert.Equal(t, []string{"/nologo"}, c.AlwaysArgs())
	assert.Equal(t, []string{"/nologo"}, c.LinkerAlwaysArgs())
	assert.Equal(t, []string{"-r:System.Data.dll"}, c.LinkArgs("System.Data.dll"))
	assert.Equal(t, []string{"-warnaserror"}, c.WerrorArgs())
	assert.Empty(t, c.PicArgs())
	assert.Empty(t, c.PchUseArgs("dir", "header.h"))
	assert.Empty(t, c.PchName("header.h"))
}

func TestOutputArgs(t *testing.T) {
	c := newTestMono()

	for _, path := range []string{"prog.exe", "sub/dir/prog.exe", "weird name.exe"} {
		args := c.OutputArgs(path)
		assert.Len(t, args, 1)
		assert.True(t, len(args[0]) > len(path), "flag must carry a spelling prefix")
		assert.Equal(t, "-out:"+path, args[0])
	}
}

func TestDebugArgs(t *testing.T) {
	c := newTestMono()

	assert.Equal(t, []string{"-debug"}, c.DebugArgs(true))
	assert.Empty(t, c.DebugArgs(false))
}

func TestNeedsStaticLinker(t *testing.T) {
	assert.False(t, newTestMono().NeedsStaticLinker())
	assert.False(t, newTestVisualStudio("linux").NeedsStaticLinker())
}

func TestRSPFileSyntax(t *testing.T) {
	assert.Equal(t, rspfile.SyntaxGCC, newTestMono().RSPFileSyntax())
	assert.Equal(t, rspfile.SyntaxMSVC, newTestVisualStudio("linux").RSPFileSyntax())
}

func TestBuildTypeArgs(t *testing.T) {
	c := newTestMono()

	assert.Empty(t, c.BuildTypeArgs(buildtypes.Plain))
	assert.Equal(t, []string{"-debug"}, c.BuildTypeArgs(buildtypes.Debug))
	assert.Equal(t, []string{"-optimize+"}, c.BuildTypeArgs(buildtypes.Release))
}

func TestVisualStudioPortableDebug(t *testing.T) {
	onWindows := newTestVisualStudio("windows")
	assert.Equal(t, []string{"-debug"}, onWindows.BuildTypeArgs(buildtypes.Debug))
	assert.Equal(t, []string{"-debug", "-optimize+"}, onWindows.BuildTypeArgs(buildtypes.DebugOptimized))

	elsewhere := newTestVisualStudio("linux")
	assert.Equal(t, []string{"-debug:portable"}, elsewhere.BuildTypeArgs(buildtypes.Debug))
	assert.Equal(t, []string{"-debug:portable", "-optimize+"}, elsewhere.BuildTypeArgs(buildtypes.DebugOptimized),
		"only the bare debug flag is replaced, order preserved")
	assert.Equal(t, []string{"-optimize+"}, elsewhere.BuildTypeArgs(buildtypes.Release))
}

func TestAbsolutePathArgs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix style paths")
	}
	c := newTestMono()

	in := []string{"-Lrel/dir", "-lib:other/lib", "-r:System.dll", "-L/already/abs", "plain.cs"}
	out := c.AbsolutePathArgs(in, "/build")

	assert.Equal(t, []string{
		"-L/build/rel/dir",
		"-lib:/build/other/lib",
		"-r:System.dll",
		"-L/already/abs",
		"plain.cs",
	}, out)

	// input is untouched
	assert.Equal(t, "-Lrel/dir", in[0])

	// idempotent on already absolute entries
	again := c.AbsolutePathArgs(out, "/build")
	assert.Equal(t, out, again)
}

func TestInvocationIsCopied(t *testing.T) {
	c := newTestMono()
	inv := c.Invocation()
	inv[0] = "mutated"
	assert.Equal(t, []string{"mcs"}, c.Invocation())
}

func TestVariantIdentity(t *testing.T) {
	mono := newTestMono()
	assert.Equal(t, KindMono, mono.Kind())
	assert.Equal(t, "mono", mono.Runner())
	assert.Equal(t, "6.12.0", mono.Version())
	assert.Equal(t, "C sharp", mono.DisplayLanguage())
	assert.Equal(t, machine.Host, mono.ForMachine())

	vs := newTestVisualStudio("linux")
	assert.Equal(t, KindVisualStudio, vs.Kind())
	assert.Empty(t, vs.Runner(), "csc artifacts are natively executable")
}
