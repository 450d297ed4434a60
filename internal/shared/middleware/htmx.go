package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	htmxKey    contextKey = "htmx"
	triggerKey contextKey = "htmx-trigger"
)

// HTMX marks requests issued by htmx and records the id of the element
// that triggered them.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		if isHTMX {
			ctx = context.WithValue(ctx, triggerKey, r.Header.Get("HX-Trigger"))
		}
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxKey).(bool); ok {
		return v
	}
	return false
}

// Trigger returns the HX-Trigger element id of an htmx request.
func Trigger(r *http.Request) string {
	v, _ := r.Context().Value(triggerKey).(string)
	return v
}
