package web

import (
	"net/http"

	"github.com/emiliopalmerini/cloudbill/internal/web/templates"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	snap := sess.Snapshot(s.dataset)
	render(r.Context(), w, templates.Dashboard(s.buildPage(snap)))
}
