package domain

import (
	"errors"
	"testing"
)

func TestNewDataset_Bounds(t *testing.T) {
	ds := sampleDataset(t)
	if got := ds.CostBounds(); got != (CostRange{Min: 90000, Max: 1650000}) {
		t.Errorf("bounds = %+v", got)
	}
	start := ds.InitialState()
	if start.Cost != ds.CostBounds() {
		t.Errorf("initial range = %+v", start.Cost)
	}
	if !start.Windows.Has(WindowBusiness) || !start.Windows.Has(WindowPeak) {
		t.Errorf("initial windows = %v", start.Windows.Windows())
	}
}

func TestNewDataset_Errors(t *testing.T) {
	if _, err := NewDataset(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
	if _, err := NewDataset([]Record{rec(-1, 0, WindowPeak, "", "", "")}); !errors.Is(err, ErrNegativeCost) {
		t.Errorf("expected ErrNegativeCost, got %v", err)
	}
	if _, err := NewDataset([]Record{rec(1, 0, "NIGHT", "", "", "")}); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("expected ErrUnknownWindow, got %v", err)
	}
}

func TestDataset_RecordsIsCopy(t *testing.T) {
	ds := sampleDataset(t)
	rs := ds.Records()
	rs[0].MonthlyCost = 1
	if ds.Records()[0].MonthlyCost != 90000 {
		t.Error("Records() exposed internal storage")
	}
}

func TestParseTrafficWindow(t *testing.T) {
	w, err := ParseTrafficWindow(" peak ")
	if err != nil || w != WindowPeak {
		t.Errorf("ParseTrafficWindow = %q, %v", w, err)
	}
	if _, err := ParseTrafficWindow("lunch"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("expected ErrUnknownWindow, got %v", err)
	}
}
