package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrybuild/quarry/internal/errs"
)

func TestErrs(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantMessage     string
		wantJoinMessage string
	}{
		{
			"Creates error",
			errs.New("hello %s", "world"),
			"hello world",
			"hello world",
		},
		{
			"Creates wrapped error",
			errs.Wrap(errors.New("Wrapped"), "Wrapper %s", "error"),
			"Wrapper error",
			"Wrapper error,Wrapped",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			require.Equal(t, tt.wantMessage, err.Error())

			ee, ok := err.(errs.Error)
			require.True(t, ok, "error should be of type errs.Error")
			assert.NotNil(t, ee.Stack(), "stacktrace was not created")

			joined := errs.Join(tt.err, ",")
			assert.Equal(t, tt.wantJoinMessage, joined.Error())
		})
	}
}

func TestUnwrapExitCode(t *testing.T) {
	assert.Equal(t, 0, errs.UnwrapExitCode(nil))
	assert.Equal(t, 1, errs.UnwrapExitCode(errs.New("plain")))
	assert.Equal(t, 42, errs.UnwrapExitCode(errs.WrapExitCode(errs.New("coded"), 42)))
	assert.Equal(t, 42, errs.UnwrapExitCode(errs.Wrap(errs.WrapExitCode(errs.New("coded"), 42), "outer")))
}
