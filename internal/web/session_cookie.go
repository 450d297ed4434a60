package web

import (
	"net/http"

	"github.com/emiliopalmerini/cloudbill/internal/session"
)

const sessionCookie = "cloudbill_session"

// session returns the caller's session, starting one and setting the
// cookie when the request carries no live session id.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}

	sess, created := s.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}
