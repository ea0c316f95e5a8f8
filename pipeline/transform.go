package pipeline

import "context"

// Transform applies one stage to one item. It returns a tagged Output or an
// error; errors are routed through the run's ErrorPolicy.
type Transform[T any] func(ctx context.Context, item T) (Output[T], error)

// Builder constructs a fresh Transform. Builders are invoked exactly once
// per top-level run (never re-invoked for fan-out sub-runs), so the returned
// closure may carry state scoped to that run.
type Builder[T any] func() Transform[T]

// Stateless wraps a plain transform as a Builder that returns it unchanged.
// Use when the transform holds no per-run state.
func Stateless[T any](fn Transform[T]) Builder[T] {
	return func() Transform[T] { return fn }
}

// MapFunc builds a stateless transform that replaces each item with fn(item).
func MapFunc[T any](fn func(T) T) Builder[T] {
	return Stateless(func(_ context.Context, item T) (Output[T], error) {
		return One(fn(item)), nil
	})
}

// FilterFunc builds a stateless transform that drops items failing pred.
func FilterFunc[T any](pred func(T) bool) Builder[T] {
	return Stateless(func(_ context.Context, item T) (Output[T], error) {
		if !pred(item) {
			return Drop[T](), nil
		}
		return One(item), nil
	})
}

// FlatMapFunc builds a stateless transform that fans each item out into the
// items returned by fn.
func FlatMapFunc[T any](fn func(T) []T) Builder[T] {
	return Stateless(func(_ context.Context, item T) (Output[T], error) {
		return Spread(fn(item)), nil
	})
}
