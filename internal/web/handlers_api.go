package web

import (
	"net/http"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/session"
)

type stateJSON struct {
	Cost       domain.CostRange       `json:"cost"`
	Windows    []domain.TrafficWindow `json:"windows"`
	Selections session.Selections     `json:"selections"`
}

type summaryJSON struct {
	State       stateJSON        `json:"state"`
	Summary     domain.Summary   `json:"summary"`
	DatasetRows int              `json:"dataset_rows"`
	Bounds      domain.CostRange `json:"bounds"`
}

type groupJSON struct {
	Key   string          `json:"key"`
	Count int             `json:"count"`
	Stats domain.BoxStats `json:"stats"`
}

type distributionJSON struct {
	Field  domain.Field `json:"field"`
	Groups []groupJSON  `json:"groups"`
}

func newStateJSON(snap session.Snapshot) stateJSON {
	windows := snap.State.Windows.Windows()
	if windows == nil {
		windows = []domain.TrafficWindow{}
	}
	return stateJSON{
		Cost:       snap.State.Cost,
		Windows:    windows,
		Selections: snap.Selections,
	}
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	snap := s.session(w, r).Snapshot(s.dataset)
	writeJSON(w, summaryJSON{
		State:       newStateJSON(snap),
		Summary:     snap.Summary,
		DatasetRows: s.dataset.Len(),
		Bounds:      s.dataset.CostBounds(),
	})
}

// handleAPIDistribution groups the current view by ?by=, defaulting to the
// session's split selection. It does not change the session.
func (s *Server) handleAPIDistribution(w http.ResponseWriter, r *http.Request) {
	snap := s.session(w, r).Snapshot(s.dataset)

	dist := snap.Distribution
	if by := r.URL.Query().Get("by"); by != "" {
		field, err := domain.ParseField(by)
		if err != nil || field == domain.FieldNone {
			http.Error(w, "unknown field: "+by, http.StatusBadRequest)
			return
		}
		dist = domain.GroupDistribution(snap.View, field)
	}

	out := distributionJSON{Field: dist.Field, Groups: make([]groupJSON, 0, len(dist.Groups))}
	for _, g := range dist.Groups {
		out.Groups = append(out.Groups, groupJSON{Key: g.Key, Count: len(g.Ratios), Stats: g.Stats()})
	}
	writeJSON(w, out)
}
