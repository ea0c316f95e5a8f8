package pipeline

import (
	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/util"
)

// stage is one live transform in a resolved chain.
type stage[T any] struct {
	name string
	fn   Transform[T]
}

// resolveEntries turns registered builders into live transforms for one run.
// It walks entries in registration order, excludes those whose group is in
// skipGroups, and invokes each remaining builder exactly once. The resolved
// chain is threaded unchanged (sliced, never re-resolved) through fan-out
// sub-runs.
func resolveEntries[T any](entries []Entry[T], skipGroups []string) ([]stage[T], error) {
	stages := make([]stage[T], 0, len(entries))
	for _, e := range entries {
		if util.Contains(skipGroups, e.Group) {
			continue
		}
		if e.Build == nil {
			return nil, errors.Configuration(e.Name, "nil builder")
		}
		fn := e.Build()
		if fn == nil {
			return nil, errors.Configuration(e.Name, "builder returned a nil transform")
		}
		stages = append(stages, stage[T]{name: e.Name, fn: fn})
	}
	return stages, nil
}
