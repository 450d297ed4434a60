package domain

import (
	"fmt"
	"slices"
)

// Dataset is the immutable table loaded at startup.
// It is safe for concurrent readers.
type Dataset struct {
	records []Record
	bounds  CostRange
}

// NewDataset validates and copies records into a Dataset.
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	bounds := CostRange{Min: records[0].MonthlyCost, Max: records[0].MonthlyCost}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		bounds.Min = min(bounds.Min, r.MonthlyCost)
		bounds.Max = max(bounds.Max, r.MonthlyCost)
	}
	return &Dataset{records: slices.Clone(records), bounds: bounds}, nil
}

func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of the table in load order.
func (d *Dataset) Records() []Record { return slices.Clone(d.records) }

// CostBounds returns the observed monthly cost range.
func (d *Dataset) CostBounds() CostRange { return d.bounds }

// InitialState is the filter a fresh or reset session starts from:
// the full observed cost range with every traffic window selected.
func (d *Dataset) InitialState() FilterState {
	return FilterState{
		Cost:    d.bounds,
		Windows: NewWindowSet(TrafficWindows...),
	}
}
