package login

import (
	"net/http"

	"tecnoreparos/infrastructure/cache"
	"tecnoreparos/infrastructure/idle"
	sessioncookie "tecnoreparos/infrastructure/session"
)

// LogoutHandler removes session state, tears down the idle watchdog and
// clears the cookie. Unconditional: it works from any state.
func LogoutHandler(sessionCache *cache.UserSessionCache, monitors *idle.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err == nil && cookie.Value != "" {
			if m, ok := monitors.Get(cookie.Value); ok {
				m.Logout()
			}
			monitors.Remove(cookie.Value)
			sessionCache.DeleteSessionBySessionToken(cookie.Value)
		}
		http.SetCookie(w, sessioncookie.SessionCookie("", -1))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
