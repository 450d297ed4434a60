// Package session holds per-visitor dashboard state and turns control
// events into recomputed views.
package session

import (
	"sync"
	"time"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
)

// Selections are the chart options that do not affect filtering.
type Selections struct {
	ScatterColor domain.Field `json:"scatter_color"`
	SplitBy      domain.Field `json:"ratio_split_by"`
}

func DefaultSelections() Selections {
	return Selections{ScatterColor: domain.FieldNone, SplitBy: domain.FieldWeekday}
}

// Snapshot is the result of one recompute. It is never stored.
type Snapshot struct {
	State        domain.FilterState
	Selections   Selections
	View         domain.FilteredView
	Summary      domain.Summary
	Distribution domain.Distribution
	Version      uint64
	Elapsed      time.Duration
}

// Metrics describes the recompute for the metrics exporter.
func (s Snapshot) Metrics(event string, datasetRows int) *ports.RecomputeMetrics {
	undefined := 0
	for _, row := range s.View.Rows {
		if !row.Ratio.Defined() {
			undefined++
		}
	}
	return &ports.RecomputeMetrics{
		Event:           event,
		MatchedRows:     s.View.Len(),
		DatasetRows:     datasetRows,
		UndefinedRatios: undefined,
		Empty:           s.View.Empty(),
		Duration:        s.Elapsed,
	}
}

// Session is one visitor's dashboard. Dispatch and Snapshot serialize on mu,
// so recomputes for a session never overlap.
type Session struct {
	ID string

	mu      sync.Mutex
	st      state
	version uint64

	// guarded by Store.mu
	lastSeen time.Time
}

// New starts a session at the dataset's initial state.
func New(id string, ds *domain.Dataset) *Session {
	return &Session{
		ID: id,
		st: state{filter: ds.InitialState(), sel: DefaultSelections()},
	}
}

// Dispatch applies ev and recomputes the view. A rejected event leaves the
// session unchanged.
func (s *Session) Dispatch(ev Event, ds *domain.Dataset) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st
	if err := ev.apply(&next, ds); err != nil {
		return Snapshot{}, err
	}
	s.st = next
	s.version++
	return compute(ds, s.st, s.version), nil
}

// Snapshot recomputes the view for the current state.
func (s *Session) Snapshot(ds *domain.Dataset) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return compute(ds, s.st, s.version)
}

// State returns the current filter state and selections.
func (s *Session) State() (domain.FilterState, Selections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.filter, s.st.sel
}

func compute(ds *domain.Dataset, st state, version uint64) Snapshot {
	start := time.Now()
	view := domain.Filter(ds, st.filter)
	return Snapshot{
		State:        st.filter,
		Selections:   st.sel,
		View:         view,
		Summary:      domain.Summarize(view),
		Distribution: domain.GroupDistribution(view, st.sel.SplitBy),
		Version:      version,
		Elapsed:      time.Since(start),
	}
}
