package settings

import (
	"net/http"
	"net/url"
	"strings"
)

// ThemeToggleHandler flips the display mode and sends the user back where
// they came from.
func ThemeToggleHandler(themes *ThemeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		themes.Toggle(r.Context())
		http.Redirect(w, r, safeReturnPath(r), http.StatusSeeOther)
	}
}

// safeReturnPath resolves the Referer to a path on this host. Anything
// off-host, scheme-relative or unparseable falls back to the orders screen
// so the redirect target can never leave the app.
func safeReturnPath(r *http.Request) string {
	const fallback = "/tasker/orders"

	ref := r.Referer()
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil {
		return fallback
	}
	if u.Host != "" && u.Host != r.Host {
		return fallback
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	return u.RequestURI()
}
