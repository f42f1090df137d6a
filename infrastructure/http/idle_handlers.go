package http

import (
	"encoding/json"
	"net/http"

	sessioncookie "tecnoreparos/infrastructure/session"
)

// idleStatus is the payload the layout script polls for.
type idleStatus struct {
	State     string `json:"state"`
	Remaining int    `json:"remaining"`
}

// IdleStatusHandler reports the watchdog state for the caller's session.
// Reading the state is not activity; only real requests and the explicit
// keepalive reset the countdown.
func (s *Server) IdleStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status := idleStatus{State: "logged-out"}
		if cookie, err := r.Cookie(sessioncookie.CookieName); err == nil {
			if m, ok := s.Monitors.Get(cookie.Value); ok {
				state, remaining := m.Snapshot()
				status = idleStatus{State: state.String(), Remaining: remaining}
			}
		}
		_ = json.NewEncoder(w).Encode(status)
	}
}

// KeepAliveHandler is the explicit "stay active" action on the warning
// prompt.
func (s *Server) KeepAliveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessioncookie.CookieName); err == nil {
			if m, ok := s.Monitors.Get(cookie.Value); ok {
				m.StayActive()
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
