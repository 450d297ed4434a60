package web

import (
	"net/http"

	"github.com/emiliopalmerini/cloudbill/internal/logger"
	"github.com/emiliopalmerini/cloudbill/internal/session"
	"github.com/emiliopalmerini/cloudbill/internal/shared/middleware"
	"github.com/emiliopalmerini/cloudbill/internal/web/templates"
)

// handleEvent applies one control change and returns the recomputed panels
// as out-of-band fragments. Plain form posts are redirected to the page.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	ev, err := session.ParseEvent(r.PostForm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	snap, err := sess.Dispatch(ev, s.dataset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Debug("event applied",
		"event", ev.Name(),
		"trigger", middleware.Trigger(r),
		"rows", snap.View.Len(),
		"version", snap.Version,
	)
	s.recordRecompute(r.Context(), ev.Name(), snap)

	if !middleware.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	frag := templates.Fragments{Panels: s.buildPanels(snap)}
	if resetsControls(ev, snap) {
		sidebar := s.buildSidebar(snap.State)
		frag.Sidebar = &sidebar
	}
	render(r.Context(), w, templates.EventFragments(frag))
}

// resetsControls reports whether the sidebar inputs no longer match what the
// browser posted: after a reset, or when a cost range was swapped or clamped.
func resetsControls(ev session.Event, snap session.Snapshot) bool {
	switch e := ev.(type) {
	case session.Reset:
		return true
	case session.SetCostRange:
		return e.Min != snap.State.Cost.Min || e.Max != snap.State.Cost.Max
	}
	return false
}
