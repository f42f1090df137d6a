// Package kvstore is the persistence substrate for the app: an opaque
// string-keyed store the collections and the theme preference are mirrored
// into. The in-memory collections stay authoritative for the session; the
// persisted copy is only read back at the next process start.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"tecnoreparos/infrastructure/sqlite"
	"tecnoreparos/models"
)

// Well-known keys. The names carry over from the original storage layout so
// an existing database keeps its data.
const (
	KeyServiceOrders = "tecnoReparos-serviceOrders"
	KeyStockItems    = "tecnoReparos-stockItems"
	KeyTheme         = "theme"
)

// Store is the get/set contract the rest of the app depends on.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// SQLite is the production Store, one row per key in kv_entries.
type SQLite struct {
	db *sqlite.DB
}

func NewSQLite(db *sqlite.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.Bun.NewSelect().Model(&entry).Where("key = ?", key).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	entry := &models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(entry).
			On("CONFLICT (key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}
