// Package settings holds the display-mode preference: light or dark,
// initialized before the first page render and persisted on every toggle.
package settings

import (
	"context"
	"log/slog"
	"sync"

	"tecnoreparos/infrastructure/kvstore"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeManager resolves the initial theme once and serves/toggles it from
// memory afterwards, mirroring each change back to the kv store.
type ThemeManager struct {
	mu      sync.RWMutex
	kv      kvstore.Store
	current string
}

// NewThemeManager picks the stored preference when it is a valid value,
// falling back to ambientDefault (the platform appearance signal) and then
// to light.
func NewThemeManager(ctx context.Context, kv kvstore.Store, ambientDefault string) *ThemeManager {
	m := &ThemeManager{kv: kv, current: ThemeLight}
	if ambientDefault == ThemeDark || ambientDefault == ThemeLight {
		m.current = ambientDefault
	}

	stored, ok, err := kv.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		slog.Warn("read theme preference failed", slog.Any("err", err))
		return m
	}
	if ok && (stored == ThemeLight || stored == ThemeDark) {
		m.current = stored
	}
	return m
}

// Current returns the active theme.
func (m *ThemeManager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Toggle flips the theme and persists the new value. Persistence failures
// are logged; the in-memory value still flips.
func (m *ThemeManager) Toggle(ctx context.Context) string {
	m.mu.Lock()
	if m.current == ThemeLight {
		m.current = ThemeDark
	} else {
		m.current = ThemeLight
	}
	next := m.current
	m.mu.Unlock()

	if err := m.kv.Set(ctx, kvstore.KeyTheme, next); err != nil {
		slog.Error("persist theme preference failed", slog.Any("err", err))
	}
	return next
}
