package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
	"github.com/emiliopalmerini/cloudbill/internal/session"
	"github.com/emiliopalmerini/cloudbill/internal/web/templates"
)

const costStep = 10000

// buildSidebar maps the filter state onto the sidebar controls.
func (s *Server) buildSidebar(state domain.FilterState) templates.Sidebar {
	bounds := s.dataset.CostBounds()
	return templates.Sidebar{
		CostMin:  bounds.Min,
		CostMax:  bounds.Max,
		CostStep: costStep,
		CostFrom: state.Cost.Min,
		CostTo:   state.Cost.Max,
		Display:  templates.NewCostDisplay(state.Cost),
		Windows:  templates.WindowOptions(state.Windows),
	}
}

// buildPanels formats a snapshot for the KPI, table and chart panels.
func (s *Server) buildPanels(snap session.Snapshot) templates.Panels {
	head := snap.View.Head(s.previewRows)
	rows := make([]templates.TableRow, 0, len(head))
	for _, r := range head {
		rows = append(rows, templates.NewTableRow(r))
	}

	return templates.Panels{
		Display: templates.NewCostDisplay(snap.State.Cost),
		KPIs:    templates.NewKPIs(snap.Summary),
		Table: templates.Table{
			Empty: snap.View.Empty(),
			Rows:  rows,
			Info:  templates.TableInfo(len(head)),
		},
		Scatter: templates.PlotPanel{
			Empty:    snap.View.Empty(),
			ImageURL: chartURL("scatter", snap.Version),
			Options:  templates.FieldOptions(domain.ColorFields, snap.Selections.ScatterColor),
		},
		Distribution: templates.PlotPanel{
			Empty:    snap.Distribution.Empty(),
			ImageURL: chartURL("distribution", snap.Version),
			Options:  templates.FieldOptions(domain.GroupFields, snap.Selections.SplitBy),
		},
	}
}

func (s *Server) buildPage(snap session.Snapshot) templates.Page {
	return templates.Page{
		Title:   templates.Title,
		Sidebar: s.buildSidebar(snap.State),
		Panels:  s.buildPanels(snap),
	}
}

// chartURL carries the session version so browsers refetch after each event.
func chartURL(name string, version uint64) string {
	return fmt.Sprintf("/charts/%s.png?v=%d", name, version)
}

// render buffers c so a template error can still become a 500.
func render(ctx context.Context, w http.ResponseWriter, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

// recordRecompute forwards recompute metrics; failures never fail a request.
func (s *Server) recordRecompute(ctx context.Context, event string, snap session.Snapshot) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.ExportRecompute(ctx, snap.Metrics(event, s.dataset.Len())); err != nil {
		logger.Warn("export recompute metrics", "event", event, "error", err)
	}
}
