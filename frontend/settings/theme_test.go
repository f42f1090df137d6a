package settings

import (
	"context"
	"errors"
	"testing"

	"tecnoreparos/infrastructure/kvstore"
)

type memKV struct {
	values  map[string]string
	failGet bool
}

func newMemKV() *memKV { return &memKV{values: make(map[string]string)} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("kv unavailable")
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func TestInitialThemeFromStoredPreference(t *testing.T) {
	kv := newMemKV()
	kv.values[kvstore.KeyTheme] = ThemeDark

	m := NewThemeManager(context.Background(), kv, ThemeLight)
	if got := m.Current(); got != ThemeDark {
		t.Fatalf("expected stored dark theme, got %q", got)
	}
}

func TestInitialThemeIgnoresInvalidStoredValue(t *testing.T) {
	cases := []struct {
		name    string
		stored  string
		ambient string
		want    string
	}{
		{name: "garbage falls back to ambient", stored: "blue", ambient: ThemeDark, want: ThemeDark},
		{name: "garbage and garbage ambient fall back to light", stored: "blue", ambient: "solarized", want: ThemeLight},
		{name: "absent key uses ambient", stored: "", ambient: ThemeDark, want: ThemeDark},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newMemKV()
			if tc.stored != "" {
				kv.values[kvstore.KeyTheme] = tc.stored
			}
			m := NewThemeManager(context.Background(), kv, tc.ambient)
			if got := m.Current(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInitialThemeSurvivesKVReadFailure(t *testing.T) {
	kv := newMemKV()
	kv.failGet = true

	m := NewThemeManager(context.Background(), kv, ThemeDark)
	if got := m.Current(); got != ThemeDark {
		t.Fatalf("expected ambient default on kv failure, got %q", got)
	}
}

func TestToggleFlipsAndPersists(t *testing.T) {
	kv := newMemKV()
	m := NewThemeManager(context.Background(), kv, ThemeLight)

	if got := m.Toggle(context.Background()); got != ThemeDark {
		t.Fatalf("expected dark after toggle, got %q", got)
	}
	if kv.values[kvstore.KeyTheme] != ThemeDark {
		t.Fatalf("toggle did not persist, kv holds %q", kv.values[kvstore.KeyTheme])
	}
	if got := m.Toggle(context.Background()); got != ThemeLight {
		t.Fatalf("expected light after second toggle, got %q", got)
	}
}
