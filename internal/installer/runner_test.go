package installer

import (
	"context"
	"strings"
)

// fakeRunner records every command and replies from canned outputs and errors
// keyed by the full command line.
type fakeRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	return []byte(f.outputs[line]), f.errs[line]
}
