package session

import (
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

func testDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset([]domain.Record{
		{MonthlyCost: 90000, OverageCost: 9000, TrafficWindow: domain.WindowBusiness, Segment: "SMB", PromoApplied: "No", Weekday: "THU"},
		{MonthlyCost: 300000, OverageCost: 60000, TrafficWindow: domain.WindowPeak, Segment: "ENTERPRISE", PromoApplied: "Yes", Weekday: "SAT"},
		{MonthlyCost: 500000, OverageCost: 50000, TrafficWindow: domain.WindowBusiness, Segment: "SMB", PromoApplied: "Yes", Weekday: "FRI"},
		{MonthlyCost: 1650000, OverageCost: 165000, TrafficWindow: domain.WindowPeak, Segment: "PUBLIC", PromoApplied: "No", Weekday: "SUN"},
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		want    Event
		wantErr bool
	}{
		{
			name: "cost range",
			form: url.Values{"event": {"cost_range"}, "monthly_cost_min": {"100000"}, "monthly_cost_max": {"200000.0"}},
			want: SetCostRange{Min: 100000, Max: 200000},
		},
		{
			name: "both windows",
			form: url.Values{"event": {"traffic_window"}, "traffic_window": {"BUSINESS", "peak"}},
			want: SetWindows{Windows: domain.NewWindowSet(domain.WindowBusiness, domain.WindowPeak)},
		},
		{
			name: "no windows",
			form: url.Values{"event": {"traffic_window"}},
			want: SetWindows{},
		},
		{
			name: "scatter color",
			form: url.Values{"event": {"scatter_color"}, "scatter_color": {"promo_applied"}},
			want: SetScatterColor{Field: domain.FieldPromo},
		},
		{
			name: "split by",
			form: url.Values{"event": {"ratio_split_by"}, "ratio_split_by": {"customer_segment"}},
			want: SetSplitBy{Field: domain.FieldSegment},
		},
		{
			name: "reset",
			form: url.Values{"event": {"reset"}},
			want: Reset{},
		},
		{name: "missing event", form: url.Values{}, wantErr: true},
		{name: "unknown event", form: url.Values{"event": {"zoom"}}, wantErr: true},
		{name: "bad cost", form: url.Values{"event": {"cost_range"}, "monthly_cost_min": {"abc"}, "monthly_cost_max": {"1"}}, wantErr: true},
		{name: "nan cost", form: url.Values{"event": {"cost_range"}, "monthly_cost_min": {"90000"}, "monthly_cost_max": {"NaN"}}, wantErr: true},
		{name: "infinite cost", form: url.Values{"event": {"cost_range"}, "monthly_cost_min": {"-Inf"}, "monthly_cost_max": {"500000"}}, wantErr: true},
		{name: "cost beyond int64", form: url.Values{"event": {"cost_range"}, "monthly_cost_min": {"90000"}, "monthly_cost_max": {"1e30"}}, wantErr: true},
		{name: "missing cost", form: url.Values{"event": {"cost_range"}, "monthly_cost_min": {"1"}}, wantErr: true},
		{name: "bad window", form: url.Values{"event": {"traffic_window"}, "traffic_window": {"NIGHT"}}, wantErr: true},
		{name: "split by none", form: url.Values{"event": {"ratio_split_by"}, "ratio_split_by": {"none"}}, wantErr: true},
		{name: "bad color", form: url.Values{"event": {"scatter_color"}, "scatter_color": {"region"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvent(tt.form)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEvent) {
					t.Errorf("expected ErrInvalidEvent, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseEvent = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSession_InitialSnapshot(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)

	snap := s.Snapshot(ds)
	if snap.State != ds.InitialState() {
		t.Errorf("State = %+v, want %+v", snap.State, ds.InitialState())
	}
	if snap.Selections != DefaultSelections() {
		t.Errorf("Selections = %+v", snap.Selections)
	}
	if snap.View.Len() != 4 {
		t.Errorf("View.Len = %d, want 4", snap.View.Len())
	}
	if snap.Summary.Count == nil || *snap.Summary.Count != 4 {
		t.Errorf("Summary.Count = %v", snap.Summary.Count)
	}
	if snap.Distribution.Field != domain.FieldWeekday {
		t.Errorf("Distribution.Field = %s", snap.Distribution.Field)
	}
}

func TestSession_ClearWindowsGivesSentinels(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)

	snap, err := s.Dispatch(SetWindows{}, ds)
	if err != nil {
		t.Fatal(err)
	}
	if !snap.View.Empty() {
		t.Errorf("expected empty view, got %d rows", snap.View.Len())
	}
	if snap.Summary.Count != nil || snap.Summary.MeanRatio != nil || snap.Summary.MeanCost != nil {
		t.Errorf("expected nil sentinels, got %+v", snap.Summary)
	}
	if !snap.Distribution.Empty() {
		t.Error("expected empty distribution")
	}
}

func TestSession_CostRangeClampsAndSwaps(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)

	snap, err := s.Dispatch(SetCostRange{Min: 600000, Max: 10}, ds)
	if err != nil {
		t.Fatal(err)
	}
	want := domain.CostRange{Min: 90000, Max: 600000}
	if snap.State.Cost != want {
		t.Errorf("Cost = %+v, want %+v", snap.State.Cost, want)
	}
	if snap.View.Len() != 3 {
		t.Errorf("View.Len = %d, want 3", snap.View.Len())
	}
}

func TestSession_ResetRestoresFiltersOnly(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)

	events := []Event{
		SetCostRange{Min: 200000, Max: 400000},
		SetWindows{Windows: domain.NewWindowSet(domain.WindowPeak)},
		SetScatterColor{Field: domain.FieldSegment},
		SetSplitBy{Field: domain.FieldPromo},
	}
	for _, ev := range events {
		if _, err := s.Dispatch(ev, ds); err != nil {
			t.Fatalf("Dispatch(%s): %v", ev.Name(), err)
		}
	}

	snap, err := s.Dispatch(Reset{}, ds)
	if err != nil {
		t.Fatal(err)
	}
	if snap.State != ds.InitialState() {
		t.Errorf("State after reset = %+v, want %+v", snap.State, ds.InitialState())
	}
	if snap.Selections.ScatterColor != domain.FieldSegment || snap.Selections.SplitBy != domain.FieldPromo {
		t.Errorf("selections changed by reset: %+v", snap.Selections)
	}
	if snap.Version != 5 {
		t.Errorf("Version = %d, want 5", snap.Version)
	}
}

func TestSession_SelectionsDoNotChangeSummary(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)
	before := s.Snapshot(ds).Summary

	for _, f := range domain.GroupFields {
		snap, err := s.Dispatch(SetSplitBy{Field: f}, ds)
		if err != nil {
			t.Fatal(err)
		}
		if *snap.Summary.Count != *before.Count || *snap.Summary.MeanRatio != *before.MeanRatio || *snap.Summary.MeanCost != *before.MeanCost {
			t.Errorf("split by %s changed summary: %+v", f, snap.Summary)
		}
		if snap.Distribution.Field != f {
			t.Errorf("Distribution.Field = %s, want %s", snap.Distribution.Field, f)
		}
	}
}

func TestSession_RejectedEventKeepsState(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)

	if _, err := s.Dispatch(SetSplitBy{Field: domain.FieldNone}, ds); err == nil {
		t.Fatal("expected error splitting by none")
	}
	_, sel := s.State()
	if sel.SplitBy != domain.FieldWeekday {
		t.Errorf("SplitBy = %s, want weekday", sel.SplitBy)
	}
	if v := s.Snapshot(ds).Version; v != 0 {
		t.Errorf("Version = %d, want 0", v)
	}
}

func TestSession_ConcurrentDispatch(t *testing.T) {
	ds := testDataset(t)
	s := New("a", ds)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev := Event(SetWindows{Windows: domain.NewWindowSet(domain.WindowPeak)})
			if i%2 == 0 {
				ev = Reset{}
			}
			if _, err := s.Dispatch(ev, ds); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if v := s.Snapshot(ds).Version; v != 50 {
		t.Errorf("Version = %d, want 50", v)
	}
}

func TestSnapshot_Metrics(t *testing.T) {
	ds, err := domain.NewDataset([]domain.Record{
		{MonthlyCost: 0, OverageCost: 10, TrafficWindow: domain.WindowPeak},
		{MonthlyCost: 100, OverageCost: 10, TrafficWindow: domain.WindowPeak},
	})
	if err != nil {
		t.Fatal(err)
	}
	snap := New("a", ds).Snapshot(ds)

	m := snap.Metrics(EventReset, ds.Len())
	if m.MatchedRows != 2 || m.DatasetRows != 2 || m.UndefinedRatios != 1 || m.Empty {
		t.Errorf("Metrics = %+v", m)
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	ds := testDataset(t)
	st := NewStore(ds, time.Minute)

	s1, created := st.GetOrCreate("")
	if !created || s1.ID == "" {
		t.Fatalf("expected new session, got created=%v id=%q", created, s1.ID)
	}

	s2, created := st.GetOrCreate(s1.ID)
	if created || s2 != s1 {
		t.Error("expected existing session to be returned")
	}

	s3, created := st.GetOrCreate("unknown")
	if !created || s3.ID == "unknown" {
		t.Errorf("expected fresh id for unknown session, got %q", s3.ID)
	}

	if st.Len() != 2 {
		t.Errorf("Len = %d, want 2", st.Len())
	}
}

func TestStore_Sweep(t *testing.T) {
	ds := testDataset(t)
	st := NewStore(ds, 10*time.Minute)

	now := time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	old, _ := st.GetOrCreate("")
	now = now.Add(5 * time.Minute)
	fresh, _ := st.GetOrCreate("")

	now = now.Add(6 * time.Minute)
	if n := st.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if _, ok := st.Get(old.ID); ok {
		t.Error("idle session should be evicted")
	}
	if _, ok := st.Get(fresh.ID); !ok {
		t.Error("recent session should survive")
	}
}
