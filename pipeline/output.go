package pipeline

type outputKind uint8

const (
	kindSingle outputKind = iota
	kindDrop
	kindMany
)

// Output is the tagged result of applying a Transform to one item: the item
// is dropped, replaced by a single item, or fanned out into many independent
// items. The tag is explicit: values are never inspected for iterability,
// so element-iterable items (strings, slices) are never implicit fan-out.
type Output[T any] struct {
	kind  outputKind
	value T
	items []T
}

// Drop removes the current item from the stream. It contributes zero outputs
// and the run proceeds with the next source item.
func Drop[T any]() Output[T] {
	return Output[T]{kind: kindDrop}
}

// One passes a single item on to the next stage.
func One[T any](v T) Output[T] {
	return Output[T]{kind: kindSingle, value: v}
}

// Many fans the current item out into several independent items, each of
// which continues through the remaining chain. An empty fan-out is valid
// and contributes zero outputs.
func Many[T any](vs ...T) Output[T] {
	return Output[T]{kind: kindMany, items: vs}
}

// Spread fans out over an existing slice without copying it.
func Spread[T any](vs []T) Output[T] {
	return Output[T]{kind: kindMany, items: vs}
}

// IsDrop reports whether the output removes the item.
func (o Output[T]) IsDrop() bool { return o.kind == kindDrop }

// IsMany reports whether the output fans out.
func (o Output[T]) IsMany() bool { return o.kind == kindMany }

// Value returns the single output item. Only meaningful when the output is
// neither a drop nor a fan-out.
func (o Output[T]) Value() T { return o.value }

// Items returns the fan-out items. Only meaningful when IsMany is true.
func (o Output[T]) Items() []T { return o.items }
