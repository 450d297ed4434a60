package otel

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/cloudbill/internal/config"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
)

var (
	_ ports.MetricsExporter = (*Exporter)(nil)
	_ ports.MetricsExporter = (*NoOpExporter)(nil)
)

func TestExportRecompute(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	exp, err := newExporter(provider)
	if err != nil {
		t.Fatalf("newExporter: %v", err)
	}
	defer exp.Close(context.Background())

	ctx := context.Background()
	err = exp.ExportRecompute(ctx, &ports.RecomputeMetrics{
		Event:       "traffic_window",
		MatchedRows: 0,
		DatasetRows: 244,
		Empty:       true,
		Duration:    3 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("ExportRecompute: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	for _, want := range []string{
		"cloudbill_recompute_total",
		"cloudbill_recompute_duration_seconds",
		"cloudbill_filtered_rows",
		"cloudbill_empty_views_total",
	} {
		if !names[want] {
			t.Errorf("metric %s not collected; got %v", want, names)
		}
	}
	if names["cloudbill_undefined_ratios_total"] {
		t.Error("undefined ratio counter should not be recorded when zero")
	}
}

func TestNewExporter_Disabled(t *testing.T) {
	if _, err := NewExporter(context.Background(), Config{}); err == nil {
		t.Error("expected error for disabled exporter")
	}
}

func TestNewFromConfig_FallsBackToNoOp(t *testing.T) {
	exp := NewFromConfig(context.Background(), ConfigFrom(config.Otel{}))
	if _, ok := exp.(*NoOpExporter); !ok {
		t.Errorf("expected NoOpExporter, got %T", exp)
	}
}
