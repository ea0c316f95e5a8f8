package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/pipekit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       30 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(config.Interval),
		)),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for pipeline observability.
type Metrics struct {
	itemsPulled   metric.Int64Counter
	itemsYielded  metric.Int64Counter
	itemsDropped  metric.Int64Counter
	fanoutTotal   metric.Int64Counter
	stageDuration metric.Float64Histogram
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	itemsPulled, err := meter.Int64Counter("pipeline.items.pulled",
		metric.WithDescription("Items pulled from the source"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.items.pulled counter: %w", err)
	}

	itemsYielded, err := meter.Int64Counter("pipeline.items.yielded",
		metric.WithDescription("Items that reached the end of the chain"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.items.yielded counter: %w", err)
	}

	itemsDropped, err := meter.Int64Counter("pipeline.items.dropped",
		metric.WithDescription("Items dropped by a transform"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.items.dropped counter: %w", err)
	}

	fanoutTotal, err := meter.Int64Counter("pipeline.fanout.total",
		metric.WithDescription("Fan-out expansions by stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.fanout.total counter: %w", err)
	}

	stageDuration, err := meter.Float64Histogram("pipeline.stage.duration",
		metric.WithDescription("Duration of stage applications in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.stage.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("pipeline.error.total",
		metric.WithDescription("Total errors by kind and stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.error.total counter: %w", err)
	}

	return &Metrics{
		itemsPulled:   itemsPulled,
		itemsYielded:  itemsYielded,
		itemsDropped:  itemsDropped,
		fanoutTotal:   fanoutTotal,
		stageDuration: stageDuration,
		errorTotal:    errorTotal,
	}, nil
}

// RecordPull increments the pulled-item count for a run.
func (m *Metrics) RecordPull(ctx context.Context) {
	m.itemsPulled.Add(ctx, 1)
}

// RecordYield increments the yielded-item count for a run.
func (m *Metrics) RecordYield(ctx context.Context) {
	m.itemsYielded.Add(ctx, 1)
}

// RecordDrop records an item dropped by the named stage.
func (m *Metrics) RecordDrop(ctx context.Context, stage string) {
	m.itemsDropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
	))
}

// RecordFanOut records a fan-out expansion by the named stage.
func (m *Metrics) RecordFanOut(ctx context.Context, stage string, width int) {
	m.fanoutTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.Int("width", width),
	))
}

// RecordStage records a stage application.
func (m *Metrics) RecordStage(ctx context.Context, stage, status string, duration time.Duration) {
	m.stageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("status", status),
	))
}

// RecordError records an error by kind and stage.
func (m *Metrics) RecordError(ctx context.Context, kind, stage string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("stage", stage),
	))
}
