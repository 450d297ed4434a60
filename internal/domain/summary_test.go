package domain

import (
	"math"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(FilteredView{})
	if s.Count != nil || s.MeanRatio != nil || s.MeanCost != nil {
		t.Errorf("expected all sentinels, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	ds := sampleDataset(t)
	s := Summarize(Filter(ds, ds.InitialState()))

	if s.Count == nil || *s.Count != 5 {
		t.Fatalf("count = %v, want 5", s.Count)
	}
	wantCost := (90000.0 + 300000 + 500000 + 800000 + 1650000) / 5
	if s.MeanCost == nil || *s.MeanCost != wantCost {
		t.Errorf("mean cost = %v, want %v", s.MeanCost, wantCost)
	}
	wantRatio := (0.1 + 0.2 + 0.1 + 0.25 + 0.1) / 5
	if s.MeanRatio == nil || math.Abs(*s.MeanRatio-wantRatio) > 1e-12 {
		t.Errorf("mean ratio = %v, want %v", s.MeanRatio, wantRatio)
	}
}

func TestSummarize_ZeroCostRows(t *testing.T) {
	ds, err := NewDataset([]Record{
		rec(0, 1000, WindowBusiness, "SMB", "No", "MON"),
		rec(100000, 10000, WindowBusiness, "SMB", "No", "MON"),
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	s := Summarize(Filter(ds, ds.InitialState()))

	if *s.Count != 2 {
		t.Errorf("zero-cost row must be counted, count = %d", *s.Count)
	}
	if *s.MeanCost != 50000 {
		t.Errorf("zero-cost row must be in mean cost, got %v", *s.MeanCost)
	}
	if *s.MeanRatio != 0.1 {
		t.Errorf("zero-cost row must be excluded from mean ratio, got %v", *s.MeanRatio)
	}
}

func TestSummarize_NoDefinedRatios(t *testing.T) {
	ds, err := NewDataset([]Record{rec(0, 1000, WindowPeak, "SMB", "No", "MON")})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	s := Summarize(Filter(ds, ds.InitialState()))

	if s.Count == nil || *s.Count != 1 {
		t.Errorf("count = %v, want 1", s.Count)
	}
	if s.MeanRatio != nil {
		t.Errorf("expected ratio sentinel, got %v", *s.MeanRatio)
	}
	if s.MeanCost == nil || *s.MeanCost != 0 {
		t.Errorf("mean cost = %v, want 0", s.MeanCost)
	}
}

func TestSummarize_IgnoresGrouping(t *testing.T) {
	ds := sampleDataset(t)
	view := Filter(ds, ds.InitialState())
	before := Summarize(view)
	_ = GroupDistribution(view, FieldWeekday)
	_ = GroupDistribution(view, FieldSegment)
	after := Summarize(view)

	if *before.Count != *after.Count || *before.MeanCost != *after.MeanCost || *before.MeanRatio != *after.MeanRatio {
		t.Errorf("summary changed after grouping: %+v vs %+v", before, after)
	}
}
