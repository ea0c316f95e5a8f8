package pipeline

import (
	"context"
	"fmt"

	"github.com/kbukum/pipekit/logger"
)

// ErrorPolicy decides what happens when a transform or the source fails for
// one item. Returning (substitute, nil) re-injects the substitute item and
// execution resumes at the stage after the failed one; returning an error
// abandons the failing branch's remaining output and propagates. The policy
// is supplied once, at Runner construction, and invoked exactly once per
// failure; there is no implicit retry or backoff.
type ErrorPolicy[T any] func(ctx context.Context, item T, cause error) (T, error)

// DefaultErrorPolicy logs one diagnostic line naming the failing item, then
// returns the cause, making failures fatal unless the caller supplies a
// different policy.
func DefaultErrorPolicy[T any](log *logger.Logger) ErrorPolicy[T] {
	if log == nil {
		log = logger.WithComponent("pipeline")
	}
	return func(_ context.Context, item T, cause error) (T, error) {
		log.Error("problem with item", logger.Fields(
			logger.FieldItem, fmt.Sprintf("%v", item),
			logger.FieldError, cause.Error(),
		))
		var zero T
		return zero, cause
	}
}

// SubstitutePolicy always recovers with a fixed substitute item.
func SubstitutePolicy[T any](substitute T) ErrorPolicy[T] {
	return func(context.Context, T, error) (T, error) {
		return substitute, nil
	}
}

// IgnorePolicy recovers by re-injecting the failing item unchanged, so the
// remaining stages still run on it.
func IgnorePolicy[T any]() ErrorPolicy[T] {
	return func(_ context.Context, item T, _ error) (T, error) {
		return item, nil
	}
}
