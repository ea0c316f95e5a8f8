package pipeline

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
)

func noopMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	m, err := observability.NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestWithStageTracing_PassesThrough(t *testing.T) {
	wrapped := WithStageTracing(MapFunc(func(n int) int { return n + 1 })(), "up_one")
	out, err := wrapped(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != 2 {
		t.Errorf("got %d, want 2", out.Value())
	}
}

func TestWithStageTracing_PropagatesError(t *testing.T) {
	fail := Stateless(func(_ context.Context, n int) (Output[int], error) {
		return Output[int]{}, errors.New("boom")
	})()
	wrapped := WithStageTracing(fail, "explode")
	if _, err := wrapped(context.Background(), 1); err == nil {
		t.Fatal("expected error to pass through the span wrapper")
	}
}

func TestWithStageMetrics_PassesThrough(t *testing.T) {
	wrapped := WithStageMetrics(MapFunc(func(n int) int { return n * 2 })(), "double", noopMetrics(t))
	out, err := wrapped(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != 6 {
		t.Errorf("got %d, want 6", out.Value())
	}
}

func TestWithStageMetrics_RecordsErrorStatus(t *testing.T) {
	fail := Stateless(func(_ context.Context, n int) (Output[int], error) {
		return Output[int]{}, errors.New("boom")
	})()
	wrapped := WithStageMetrics(fail, "explode", noopMetrics(t))
	if _, err := wrapped(context.Background(), 1); err == nil {
		t.Fatal("expected error to pass through the metrics wrapper")
	}
}

func TestWithStageLogging_PassesThrough(t *testing.T) {
	log := logger.NewDefault().WithComponent("test")
	wrapped := WithStageLogging(MapFunc(func(n int) int { return n - 1 })(), "down_one", log)
	out, err := wrapped(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != 9 {
		t.Errorf("got %d, want 9", out.Value())
	}
}

func TestRunner_WithObservabilityOptions(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add("up_one", upOne())
	reg.Add("twofer", twofer())

	runner := New(reg,
		WithTracing[int](),
		WithMetrics[int](noopMetrics(t)),
	)
	got := collectRun(t, runner, []int{0, 1, 3})
	want := []int{1, 1, 2, 2, 4, 4}
	if !intSliceEqual(got, want) {
		t.Errorf("wrapped stages changed semantics: got %v, want %v", got, want)
	}
}
