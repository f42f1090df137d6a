package login

import (
	"net/http"
	"net/url"
	"time"

	"tecnoreparos/infrastructure/cache"
	"tecnoreparos/infrastructure/idle"
	sessioncookie "tecnoreparos/infrastructure/session"
	"tecnoreparos/models"
)

// IdleConfig carries the inactivity timeouts applied to each new session.
type IdleConfig struct {
	IdleTimeout   time.Duration
	PromptTimeout time.Duration
}

// CreateLoginHandler checks the mock credential pair, issues a session
// cookie and arms the idle watchdog for the new session.
func CreateLoginHandler(auth *Authenticator, sessionCache *cache.UserSessionCache, monitors *idle.Registry, idleCfg IdleConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("formulário inválido"), http.StatusSeeOther)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		if err := auth.Authenticate(username, password); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape(InvalidCredentialsMessage), http.StatusSeeOther)
			return
		}

		session := models.Session{
			ID:        newSessionToken(),
			Username:  username,
			ExpiresAt: sessioncookie.DefaultExpiry(),
			CreatedAt: time.Now(),
		}
		sessionCache.AddSession(session)

		// The idle callback ends the session; the browser finds out on its
		// next poll or request.
		token := session.ID
		monitors.Add(token, idle.NewMonitor(idle.Config{
			IdleTimeout:   idleCfg.IdleTimeout,
			PromptTimeout: idleCfg.PromptTimeout,
			OnIdle: func() {
				sessionCache.DeleteSessionBySessionToken(token)
			},
		}))

		http.SetCookie(w, sessioncookie.SessionCookie(session.ID, int(sessioncookie.DefaultTTL.Seconds())))
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	}
}
