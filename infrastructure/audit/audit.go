// Package audit records before/after snapshots of store mutations. The
// stores themselves are in-memory; the audit trail is the only place where
// individual mutations, rather than whole collections, reach the database.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/uptrace/bun"

	"tecnoreparos/infrastructure/sqlite"
	"tecnoreparos/models"
)

// Service writes audit records. Failures are logged and swallowed: auditing
// must never block a user-facing mutation.
type Service struct {
	db *sqlite.DB
}

func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Record persists one audit row. before/after may be nil (creation has no
// before, deletion has no after).
func (s *Service) Record(ctx context.Context, username, action, entityType, entityID string, before, after any) {
	entry := &models.AuditLog{
		Username:   username,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		BeforeJSON: marshal(before),
		AfterJSON:  marshal(after),
	}
	err := s.db.WithTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(entry).Exec(ctx)
		return err
	})
	if err != nil {
		slog.Error("audit write failed",
			slog.String("action", action),
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.Any("err", err))
	}
}

func marshal(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
