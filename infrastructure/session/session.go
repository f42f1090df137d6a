package session

import (
	"net/http"
	"time"
)

const CookieName = "X-Session-Token"

// DefaultTTL bounds a session independently of the idle timeout.
const DefaultTTL = 12 * time.Hour

func SessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

func DefaultExpiry() time.Time {
	return time.Now().Add(DefaultTTL)
}
