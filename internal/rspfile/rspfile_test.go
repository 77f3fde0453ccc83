package rspfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "-optimize+", Quote("-optimize+", SyntaxGCC))
	assert.Equal(t, "-out:prog.exe", Quote("-out:prog.exe", SyntaxMSVC))
	assert.Equal(t, `"-lib:my libs"`, Quote("-lib:my libs", SyntaxGCC))
	assert.Equal(t, `"-r:C:\\refs\\System.dll"`, Quote(`-r:C:\refs\System.dll`, SyntaxGCC))
	assert.Equal(t, `"-r:has ""quotes"""`, Quote(`-r:has "quotes"`, SyntaxMSVC))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.rsp")
	err := Write(path, []string{"/nologo", "-out:with space.exe"}, SyntaxMSVC)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/nologo\n\"-out:with space.exe\"\n", string(b))
}

func TestSyntaxString(t *testing.T) {
	assert.Equal(t, "gcc", SyntaxGCC.String())
	assert.Equal(t, "msvc", SyntaxMSVC.String())
}
