package ports

import (
	"context"
	"time"
)

// MetricsExporter exports dashboard recompute metrics to an external observability system.
type MetricsExporter interface {
	// ExportRecompute records one event-driven recompute of a session view.
	ExportRecompute(ctx context.Context, m *RecomputeMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// RecomputeMetrics describes a single recompute pass.
type RecomputeMetrics struct {
	Event           string
	MatchedRows     int
	DatasetRows     int
	UndefinedRatios int
	Empty           bool
	Duration        time.Duration
}
