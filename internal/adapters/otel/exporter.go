package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/cloudbill/internal/logger"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
)

const (
	serviceName    = "cloudbill"
	serviceVersion = "1.0.0"
)

// Exporter exports dashboard recompute metrics to an OTEL Collector.
type Exporter struct {
	provider        *sdkmetric.MeterProvider
	recomputesTotal metric.Int64Counter
	durationHist    metric.Float64Histogram
	rowsHist        metric.Int64Histogram
	undefinedTotal  metric.Int64Counter
	emptyTotal      metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

// newExporter registers the instruments on provider.
func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	recomputesTotal, err := meter.Int64Counter(
		"cloudbill_recompute_total",
		metric.WithDescription("Total number of event-driven recomputes"),
		metric.WithUnit("{recompute}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating recompute counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"cloudbill_recompute_duration_seconds",
		metric.WithDescription("Time spent filtering and aggregating one view"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	rowsHist, err := meter.Int64Histogram(
		"cloudbill_filtered_rows",
		metric.WithDescription("Rows matched by the filter per recompute"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rows histogram: %w", err)
	}

	undefinedTotal, err := meter.Int64Counter(
		"cloudbill_undefined_ratios_total",
		metric.WithDescription("Matched rows whose overage ratio was undefined"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating undefined ratio counter: %w", err)
	}

	emptyTotal, err := meter.Int64Counter(
		"cloudbill_empty_views_total",
		metric.WithDescription("Recomputes that produced an empty view"),
		metric.WithUnit("{recompute}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating empty view counter: %w", err)
	}

	return &Exporter{
		provider:        provider,
		recomputesTotal: recomputesTotal,
		durationHist:    durationHist,
		rowsHist:        rowsHist,
		undefinedTotal:  undefinedTotal,
		emptyTotal:      emptyTotal,
	}, nil
}

// ExportRecompute records one recompute pass.
func (e *Exporter) ExportRecompute(ctx context.Context, m *ports.RecomputeMetrics) error {
	opt := metric.WithAttributes(
		attribute.String("event", m.Event),
		attribute.Bool("empty", m.Empty),
	)

	e.recomputesTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, m.Duration.Seconds(), opt)
	e.rowsHist.Record(ctx, int64(m.MatchedRows), opt)
	if m.UndefinedRatios > 0 {
		e.undefinedTotal.Add(ctx, int64(m.UndefinedRatios), opt)
	}
	if m.Empty {
		e.emptyTotal.Add(ctx, 1, opt)
	}

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

// NewFromConfig returns the OTLP exporter when enabled and a no-op exporter
// otherwise, or when the collector cannot be reached.
func NewFromConfig(ctx context.Context, cfg Config) ports.MetricsExporter {
	if !cfg.Enabled {
		return NewNoOpExporter()
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		logger.Warn("metrics export disabled", "error", err)
		return NewNoOpExporter()
	}
	logger.Info("metrics export enabled", "endpoint", cfg.Endpoint)
	return exp
}
