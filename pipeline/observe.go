package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
)

// WithStageTracing wraps a Transform with OpenTelemetry span creation.
// Each application creates a "pipeline.stage" span tagged with the stage name.
func WithStageTracing[T any](fn Transform[T], name string) Transform[T] {
	return func(ctx context.Context, item T) (Output[T], error) {
		ctx, span := observability.StartSpan(ctx, observability.SpanStage)
		defer span.End()

		observability.SetSpanAttribute(ctx, observability.AttrStage, name)

		out, err := fn(ctx, item)
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
		return out, err
	}
}

// WithStageMetrics wraps a Transform with metric recording.
// Records application duration, status, and errors per stage.
func WithStageMetrics[T any](fn Transform[T], name string, metrics *observability.Metrics) Transform[T] {
	return func(ctx context.Context, item T) (Output[T], error) {
		start := time.Now()
		out, err := fn(ctx, item)
		duration := time.Since(start)

		status := "ok"
		if err != nil {
			status = "error"
			metrics.RecordError(ctx, "item", name)
		}
		metrics.RecordStage(ctx, name, status, duration)

		return out, err
	}
}

// WithStageLogging wraps a Transform with execution logging.
// Logs: stage name, duration, and success/error status.
func WithStageLogging[T any](fn Transform[T], name string, log *logger.Logger) Transform[T] {
	return func(ctx context.Context, item T) (Output[T], error) {
		start := time.Now()
		out, err := fn(ctx, item)
		duration := time.Since(start)

		fields := logger.DurationFields(name, duration)
		if err != nil {
			fields[logger.FieldError] = err.Error()
			log.Error("stage failed", fields)
		} else {
			log.Debug("stage completed", fields)
		}

		return out, err
	}
}
