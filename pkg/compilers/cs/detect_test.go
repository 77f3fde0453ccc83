package cs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchVersion(t *testing.T) {
	assert.Equal(t, "6.12.0.182", searchVersion("Mono C# compiler version 6.12.0.182"))
	assert.Equal(t, "3.9.0", searchVersion("Microsoft (R) Visual C# Compiler version 3.9.0-6.21124.20"))
	assert.Equal(t, "6.0.301", searchVersion("6.0.301\n"))
	assert.Empty(t, searchVersion("no digits here"))
}

func TestEmptyInvocationPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewMonoCompiler(nil, "6.12.0", 0, nil, &fakeRunner{})
	})
}
