// Package metaflactest provides a metaflac.Runner that records calls instead of running the binary.
package metaflactest

import (
	"context"
	"strings"
	"sync"
)

// Recorder records every call and answers from a callback
type Recorder struct {
	mu    sync.Mutex
	calls [][]string

	// Respond produces the output for a call. Nil means empty output.
	Respond func(args []string) (string, error)
}

// Run implements metaflac.Runner
func (r *Recorder) Run(_ context.Context, args ...string) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, append([]string(nil), args...))
	r.mu.Unlock()

	if r.Respond == nil {
		return "", nil
	}
	return r.Respond(args)
}

// Calls returns a copy of the recorded argument lists
func (r *Recorder) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

// Always answers every call with the same output
func Always(out string) func([]string) (string, error) {
	return func([]string) (string, error) {
		return out, nil
	}
}

// ByTag answers --show-tag queries from a map keyed by the exact probed spelling
func ByTag(values map[string]string) func([]string) (string, error) {
	return func(args []string) (string, error) {
		for _, arg := range args {
			if name, ok := strings.CutPrefix(arg, "--show-tag="); ok {
				return values[name], nil
			}
		}
		return "", nil
	}
}
