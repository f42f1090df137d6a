package login

import (
	"net/http"

	"tecnoreparos/frontend/settings"
)

// GetLoginScreenHandler renders the login screen.
func GetLoginScreenHandler(themes *settings.ThemeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		errorMessage := r.URL.Query().Get("error")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := GetLoginScreen(themes.Current(), errorMessage).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render login screen", http.StatusInternalServerError)
			return
		}
	}
}
