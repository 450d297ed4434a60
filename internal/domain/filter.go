package domain

// CostRange is a closed interval of monthly cost in KRW.
type CostRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Contains reports whether cost lies in [Min, Max]. A reversed range
// contains nothing.
func (c CostRange) Contains(cost int64) bool {
	return c.Min <= cost && cost <= c.Max
}

// WindowSet is a set of traffic windows.
type WindowSet uint8

func windowBit(w TrafficWindow) WindowSet {
	switch w {
	case WindowBusiness:
		return 1 << 0
	case WindowPeak:
		return 1 << 1
	}
	return 0
}

func NewWindowSet(windows ...TrafficWindow) WindowSet {
	var s WindowSet
	for _, w := range windows {
		s |= windowBit(w)
	}
	return s
}

func (s WindowSet) Has(w TrafficWindow) bool {
	b := windowBit(w)
	return b != 0 && s&b != 0
}

func (s WindowSet) Empty() bool { return s == 0 }

// Windows lists the members in display order.
func (s WindowSet) Windows() []TrafficWindow {
	out := make([]TrafficWindow, 0, len(TrafficWindows))
	for _, w := range TrafficWindows {
		if s.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// FilterState is the user-controlled selection of a data subset.
type FilterState struct {
	Cost    CostRange
	Windows WindowSet
}

// Matches is the row predicate: cost in range AND window selected.
func (f FilterState) Matches(r Record) bool {
	return f.Cost.Contains(r.MonthlyCost) && f.Windows.Has(r.TrafficWindow)
}

// ViewRow is a record of the filtered view with its derived ratio.
type ViewRow struct {
	Record
	Ratio Ratio
}

// FilteredView is the subset of the dataset matching a FilterState.
type FilteredView struct {
	Rows []ViewRow
}

func (v FilteredView) Len() int { return len(v.Rows) }

func (v FilteredView) Empty() bool { return len(v.Rows) == 0 }

// Head returns at most n leading rows.
func (v FilteredView) Head(n int) []ViewRow {
	if n < 0 {
		n = 0
	}
	if n > len(v.Rows) {
		n = len(v.Rows)
	}
	return v.Rows[:n]
}

// Filter keeps the records matching state, in dataset order, and derives
// their overage ratio. It has no side effects.
func Filter(ds *Dataset, state FilterState) FilteredView {
	if ds == nil || state.Windows.Empty() || state.Cost.Min > state.Cost.Max {
		return FilteredView{}
	}
	var rows []ViewRow
	for _, r := range ds.records {
		if !state.Matches(r) {
			continue
		}
		rows = append(rows, ViewRow{Record: r, Ratio: DeriveRatio(r)})
	}
	return FilteredView{Rows: rows}
}
