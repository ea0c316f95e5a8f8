package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("pipecli")

	if cfg.ServiceName != "pipecli" {
		t.Errorf("expected ServiceName 'pipecli', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("pipecli")

	if cfg.ServiceName != "pipecli" {
		t.Errorf("expected ServiceName 'pipecli', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 30*time.Second {
		t.Errorf("expected Interval 30s, got %v", cfg.Interval)
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordPull(ctx)
	metrics.RecordYield(ctx)
	metrics.RecordDrop(ctx, "filter")
	metrics.RecordFanOut(ctx, "expand", 3)
	metrics.RecordStage(ctx, "normalize", "ok", 50*time.Millisecond)
	metrics.RecordError(ctx, "item", "normalize")
}

func TestTracer(t *testing.T) {
	tracer := Tracer("test-tracer")
	if tracer == nil {
		t.Fatal("expected non-nil tracer")
	}
}

func TestMeter(t *testing.T) {
	meter := Meter("test-meter")
	if meter == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()
	ctx, span := StartSpan(ctx, SpanPipelineRun)
	defer span.End()

	if span == nil {
		t.Fatal("expected non-nil span")
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	// Use SDK tracer so span.IsRecording() returns true
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	defer span.End()

	// All supported types - should not panic
	SetSpanAttribute(ctx, AttrStage, "normalize")
	SetSpanAttribute(ctx, AttrStageIndex, 2)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})

	// Unsupported type - ignored, no panic
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
}

func TestSetSpanError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-error")
	defer span.End()

	SetSpanError(ctx, fmt.Errorf("test error"))
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanError(ctx, fmt.Errorf("no span error"))
}

func TestSpanNameConstants(t *testing.T) {
	if SpanPipelineRun != "pipeline.run" {
		t.Errorf("expected 'pipeline.run', got %q", SpanPipelineRun)
	}
	if SpanStage != "pipeline.stage" {
		t.Errorf("expected 'pipeline.stage', got %q", SpanStage)
	}
}

func TestInitTracerSamplingRates(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
	}{
		{"always sample", 1.0},
		{"never sample", 0.0},
		{"ratio based", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := TracerConfig{
				ServiceName:    "test",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				Endpoint:       "localhost:4318",
				Insecure:       true,
				SampleRate:     tc.sampleRate,
			}
			tp, err := InitTracer(context.Background(), cfg)
			if err != nil {
				t.Skipf("InitTracer failed: %v", err)
			}
			if tp != nil {
				defer tp.Shutdown(context.Background())
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	cfg := MeterConfig{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}

	mp, err := InitMeter(context.Background(), cfg)
	if err != nil {
		t.Skipf("InitMeter failed: %v", err)
	}
	if mp != nil {
		defer mp.Shutdown(context.Background())
	}
}
