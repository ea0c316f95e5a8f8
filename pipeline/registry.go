package pipeline

import "sync"

// Entry is one registered (group, name, builder) record.
type Entry[T any] struct {
	// Group is a filter tag used only for bulk exclusion at run time; it
	// never affects relative order among non-skipped entries.
	Group string
	// Name identifies the entry in diagnostics. Duplicates are permitted.
	Name string
	// Build constructs a fresh Transform for one run.
	Build Builder[T]
}

// Registry is an ordered record of registered transform builders.
// Registration order is preserved exactly, regardless of how groups
// interleave; entries are never removed or mutated. A Registry is safe for
// concurrent use and may be shared across concurrent runs.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T]
}

// NewRegistry creates a new empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Add appends a builder under the default (empty) group.
func (r *Registry[T]) Add(name string, build Builder[T]) {
	r.AddToGroup("", name, build)
}

// AddToGroup appends a builder under the named group, preserving
// registration order.
func (r *Registry[T]) AddToGroup(group, name string, build Builder[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry[T]{Group: group, Name: name, Build: build})
}

// Entries returns an ordered copy of the registered entries for
// introspection and resolution.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry[T], len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
