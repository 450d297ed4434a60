package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/emiliopalmerini/cloudbill/internal/export"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
)

// handleAPIExport downloads every row of the caller's current view.
func (s *Server) handleAPIExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	switch format {
	case "":
		format = export.FormatJSON
	case export.FormatCSV, export.FormatJSON:
	default:
		http.Error(w, fmt.Sprintf("unsupported format: %s (use json or csv)", format), http.StatusBadRequest)
		return
	}

	snap := s.session(w, r).Snapshot(s.dataset)

	var buf bytes.Buffer
	if err := export.Write(&buf, format, snap.View.Rows); err != nil {
		logger.Error("export failed", "format", format, "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=cloudbill-export.%s", format))
	_, _ = buf.WriteTo(w)
}
