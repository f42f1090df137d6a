package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestThemeToggleRedirectTarget(t *testing.T) {
	cases := []struct {
		name    string
		referer string
		want    string
	}{
		{name: "no referer falls back", referer: "", want: "/tasker/orders"},
		{name: "same-host referer keeps path", referer: "http://app.local/tasker/stock", want: "/tasker/stock"},
		{name: "same-host referer keeps query", referer: "http://app.local/tasker/orders?status=pending", want: "/tasker/orders?status=pending"},
		{name: "foreign host falls back", referer: "https://evil.example/phish", want: "/tasker/orders"},
		{name: "scheme-relative falls back", referer: "//evil.example/phish", want: "/tasker/orders"},
		{name: "relative path is kept", referer: "/tasker/stock", want: "/tasker/stock"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := ThemeToggleHandler(NewThemeManager(context.Background(), newMemKV(), ThemeLight))

			req := httptest.NewRequest(http.MethodPost, "http://app.local/tasker/settings/theme", nil)
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tc.want {
				t.Fatalf("expected redirect to %q, got %q", tc.want, got)
			}
		})
	}
}

func TestThemeToggleHandlerFlipsTheme(t *testing.T) {
	m := NewThemeManager(context.Background(), newMemKV(), ThemeLight)
	handler := ThemeToggleHandler(m)

	req := httptest.NewRequest(http.MethodPost, "http://app.local/tasker/settings/theme", nil)
	handler(httptest.NewRecorder(), req)

	if got := m.Current(); got != ThemeDark {
		t.Fatalf("expected dark after toggle, got %q", got)
	}
}
