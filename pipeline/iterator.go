package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// NewSliceSource creates an Iterator over a slice of values.
func NewSliceSource[T any](items []T) Iterator[T] {
	return &sliceSource[T]{items: items}
}

type sliceSource[T any] struct {
	items []T
	index int
}

func (s *sliceSource[T]) Next(_ context.Context) (T, bool, error) {
	if s.index >= len(s.items) {
		var zero T
		return zero, false, nil
	}
	val := s.items[s.index]
	s.index++
	return val, true, nil
}

func (s *sliceSource[T]) Close() error { return nil }

// NewFuncSource creates an Iterator from a pull function. The function
// returns (zero, false, nil) when exhausted; an error ends the stream.
func NewFuncSource[T any](fn func(ctx context.Context) (T, bool, error)) Iterator[T] {
	return &funcSource[T]{fn: fn}
}

type funcSource[T any] struct {
	fn func(ctx context.Context) (T, bool, error)
}

func (s *funcSource[T]) Next(ctx context.Context) (T, bool, error) {
	return s.fn(ctx)
}

func (s *funcSource[T]) Close() error { return nil }

// --- Terminals ---

// Collect pulls all values and returns them as a slice. Values produced
// before an error are returned alongside it.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls all values, discarding them.
func Drain[T any](ctx context.Context, it Iterator[T]) error {
	return ForEach(ctx, it, func(context.Context, T) error { return nil })
}

// ForEach pulls all values and calls fn for each.
func ForEach[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T) error) error {
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}
