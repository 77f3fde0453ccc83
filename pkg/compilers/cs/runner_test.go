package cs

import (
	"github.com/quarrybuild/quarry/internal/exeutils"
)

// fakeRunner feeds canned results to the adapters and records every argv and
// working directory it was invoked with.
type fakeRunner struct {
	results []*exeutils.Result
	errors  []error

	argvs [][]string
	cwds  []string
}

func (f *fakeRunner) push(res *exeutils.Result, err error) {
	f.results = append(f.results, res)
	f.errors = append(f.errors, err)
}

func (f *fakeRunner) Run(argv []string, cwd string) (*exeutils.Result, error) {
	f.argvs = append(f.argvs, argv)
	f.cwds = append(f.cwds, cwd)

	idx := len(f.argvs) - 1
	if idx >= len(f.results) {
		return &exeutils.Result{ExitCode: 0}, nil
	}
	return f.results[idx], f.errors[idx]
}
