package session

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

// Event names accepted in the "event" form field.
const (
	EventCostRange     = "cost_range"
	EventTrafficWindow = "traffic_window"
	EventScatterColor  = "scatter_color"
	EventRatioSplitBy  = "ratio_split_by"
	EventReset         = "reset"
)

// Form field names of the dashboard controls.
const (
	FieldEvent        = "event"
	FieldCostMin      = "monthly_cost_min"
	FieldCostMax      = "monthly_cost_max"
	FieldWindow       = "traffic_window"
	FieldScatterColor = "scatter_color"
	FieldSplitBy      = "ratio_split_by"
)

var ErrInvalidEvent = errors.New("invalid event")

// Event is one user action on the dashboard. The set of events is closed.
type Event interface {
	Name() string
	apply(s *state, ds *domain.Dataset) error
}

// state is the mutable part of a session.
type state struct {
	filter domain.FilterState
	sel    Selections
}

// SetCostRange moves the monthly cost slider. Values are clamped to the
// dataset bounds and a reversed pair is swapped, as a dual-handle slider
// cannot cross.
type SetCostRange struct {
	Min, Max int64
}

func (SetCostRange) Name() string { return EventCostRange }

func (e SetCostRange) apply(s *state, ds *domain.Dataset) error {
	lo, hi := e.Min, e.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	bounds := ds.CostBounds()
	s.filter.Cost = domain.CostRange{
		Min: max(lo, bounds.Min),
		Max: min(hi, bounds.Max),
	}
	return nil
}

// SetWindows replaces the checked traffic windows. An empty set is valid.
type SetWindows struct {
	Windows domain.WindowSet
}

func (SetWindows) Name() string { return EventTrafficWindow }

func (e SetWindows) apply(s *state, _ *domain.Dataset) error {
	s.filter.Windows = e.Windows
	return nil
}

// SetScatterColor picks the scatter plot colour field.
type SetScatterColor struct {
	Field domain.Field
}

func (SetScatterColor) Name() string { return EventScatterColor }

func (e SetScatterColor) apply(s *state, _ *domain.Dataset) error {
	if _, err := domain.ParseField(string(e.Field)); err != nil {
		return err
	}
	s.sel.ScatterColor = e.Field
	return nil
}

// SetSplitBy picks the distribution grouping field.
type SetSplitBy struct {
	Field domain.Field
}

func (SetSplitBy) Name() string { return EventRatioSplitBy }

func (e SetSplitBy) apply(s *state, _ *domain.Dataset) error {
	if e.Field == domain.FieldNone {
		return fmt.Errorf("%w: %q cannot split the distribution", domain.ErrUnknownField, e.Field)
	}
	if _, err := domain.ParseField(string(e.Field)); err != nil {
		return err
	}
	s.sel.SplitBy = e.Field
	return nil
}

// Reset restores the initial filter state. Chart selections are kept.
type Reset struct{}

func (Reset) Name() string { return EventReset }

func (Reset) apply(s *state, ds *domain.Dataset) error {
	s.filter = ds.InitialState()
	return nil
}

// ParseEvent decodes a control change posted by the dashboard.
func ParseEvent(form url.Values) (Event, error) {
	switch name := form.Get(FieldEvent); name {
	case EventCostRange:
		lo, err := parseCost(form.Get(FieldCostMin))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEvent, FieldCostMin, err)
		}
		hi, err := parseCost(form.Get(FieldCostMax))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEvent, FieldCostMax, err)
		}
		return SetCostRange{Min: lo, Max: hi}, nil

	case EventTrafficWindow:
		var windows []domain.TrafficWindow
		for _, v := range form[FieldWindow] {
			w, err := domain.ParseTrafficWindow(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
			}
			windows = append(windows, w)
		}
		return SetWindows{Windows: domain.NewWindowSet(windows...)}, nil

	case EventScatterColor:
		f, err := domain.ParseField(form.Get(FieldScatterColor))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
		}
		return SetScatterColor{Field: f}, nil

	case EventRatioSplitBy:
		f, err := domain.ParseField(form.Get(FieldSplitBy))
		if err != nil || f == domain.FieldNone {
			return nil, fmt.Errorf("%w: unknown split field %q", ErrInvalidEvent, form.Get(FieldSplitBy))
		}
		return SetSplitBy{Field: f}, nil

	case EventReset:
		return Reset{}, nil

	case "":
		return nil, fmt.Errorf("%w: missing %q field", ErrInvalidEvent, FieldEvent)
	default:
		return nil, fmt.Errorf("%w: unknown event %q", ErrInvalidEvent, name)
	}
}

// parseCost accepts integer KRW values; range inputs may post "90000.0".
func parseCost(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing value")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	// 2^63 is the first float64 beyond int64.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return int64(f), nil
}
