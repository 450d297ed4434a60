package domain

import (
	"fmt"
	"strings"
)

// TrafficWindow is the time-of-day bucket a billing observation falls in.
type TrafficWindow string

const (
	WindowBusiness TrafficWindow = "BUSINESS"
	WindowPeak     TrafficWindow = "PEAK"
)

// TrafficWindows lists every window in display order.
var TrafficWindows = []TrafficWindow{WindowBusiness, WindowPeak}

// ParseTrafficWindow accepts a window name in any letter case.
func ParseTrafficWindow(s string) (TrafficWindow, error) {
	switch TrafficWindow(strings.ToUpper(strings.TrimSpace(s))) {
	case WindowBusiness:
		return WindowBusiness, nil
	case WindowPeak:
		return WindowPeak, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// Label returns the Korean display label used by the dashboard.
func (w TrafficWindow) Label() string {
	switch w {
	case WindowBusiness:
		return "업무시간"
	case WindowPeak:
		return "야간/피크"
	default:
		return string(w)
	}
}

// Record is one billing observation. Costs are whole KRW.
type Record struct {
	MonthlyCost   int64
	OverageCost   int64
	TrafficWindow TrafficWindow
	Segment       string
	PromoApplied  string
	Weekday       string
}

// Validate reports whether the record can be loaded into a Dataset.
func (r Record) Validate() error {
	if r.MonthlyCost < 0 {
		return fmt.Errorf("monthly cost %d: %w", r.MonthlyCost, ErrNegativeCost)
	}
	if r.OverageCost < 0 {
		return fmt.Errorf("overage cost %d: %w", r.OverageCost, ErrNegativeCost)
	}
	if _, err := ParseTrafficWindow(string(r.TrafficWindow)); err != nil {
		return err
	}
	return nil
}
