package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
)

// Load reads the source once and freezes it into a Dataset.
func Load(ctx context.Context, src ports.RecordSource) (*domain.Dataset, error) {
	start := time.Now()
	records, err := src.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", src.Describe(), err)
	}

	ds, err := domain.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("building dataset from %s: %w", src.Describe(), err)
	}

	bounds := ds.CostBounds()
	logger.Info("dataset loaded",
		"source", src.Describe(),
		"rows", ds.Len(),
		"min_cost", bounds.Min,
		"max_cost", bounds.Max,
		"elapsed", time.Since(start),
	)
	return ds, nil
}
