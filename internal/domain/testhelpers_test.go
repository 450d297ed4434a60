package domain

import "testing"

func rec(cost, overage int64, w TrafficWindow, segment, promo, weekday string) Record {
	return Record{
		MonthlyCost:   cost,
		OverageCost:   overage,
		TrafficWindow: w,
		Segment:       segment,
		PromoApplied:  promo,
		Weekday:       weekday,
	}
}

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewDataset([]Record{
		rec(90000, 9000, WindowBusiness, "SMB", "No", "THU"),
		rec(300000, 60000, WindowPeak, "ENTERPRISE", "Yes", "SAT"),
		rec(500000, 50000, WindowBusiness, "SMB", "Yes", "FRI"),
		rec(800000, 200000, WindowPeak, "PUBLIC", "No", "SUN"),
		rec(1650000, 165000, WindowPeak, "ENTERPRISE", "No", "SAT"),
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}
