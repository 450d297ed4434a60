package web

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/emiliopalmerini/cloudbill/internal/chart"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
)

func (s *Server) handleScatterPNG(w http.ResponseWriter, r *http.Request) {
	snap := s.session(w, r).Snapshot(s.dataset)
	size := chartSize(r, chart.DefaultSize)

	var buf bytes.Buffer
	err := chart.Scatter(&buf, snap.View, snap.Selections.ScatterColor, size)
	s.writePNG(w, &buf, size, "scatter", err)
}

func (s *Server) handleDistributionPNG(w http.ResponseWriter, r *http.Request) {
	snap := s.session(w, r).Snapshot(s.dataset)
	size := chartSize(r, chart.Size{Width: 1050, Height: 420})

	var buf bytes.Buffer
	err := chart.Distribution(&buf, snap.Distribution, size)
	s.writePNG(w, &buf, size, "distribution", err)
}

// writePNG sends the rendered chart, or the no-results image when
// rendering failed.
func (s *Server) writePNG(w http.ResponseWriter, buf *bytes.Buffer, size chart.Size, name string, renderErr error) {
	if renderErr != nil {
		logger.Error("chart render failed; using fallback", "chart", name, "error", renderErr)
		buf.Reset()
		if err := chart.Empty(buf, size, chart.NoResults); err != nil {
			http.Error(w, "chart render failed", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// chartSize reads optional w and h query parameters, capped to sane bounds.
func chartSize(r *http.Request, def chart.Size) chart.Size {
	q := r.URL.Query()
	w, errW := strconv.Atoi(q.Get("w"))
	h, errH := strconv.Atoi(q.Get("h"))
	if errW != nil || errH != nil || w < 100 || h < 100 || w > 2400 || h > 1600 {
		return def
	}
	return chart.Size{Width: w, Height: h}
}

