package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/uptrace/bun"

	"savor/infrastructure/sqlite"
	"savor/models"
)

// Service records pantry and favourite mutations for later inspection.
// Failures are logged, never surfaced: activity history must not break a
// user action that already succeeded on the backend.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Record writes one activity row in its own write transaction.
func (s *Service) Record(ctx context.Context, db *sqlite.DB, userID int64, action, entityType, entityID string, detail any) {
	if s == nil || db == nil {
		return
	}
	detailJSON, err := marshal(detail)
	if err != nil {
		slog.Error("marshal activity detail", slog.String("action", action), slog.Any("err", err))
		return
	}
	log := &models.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		DetailJSON: detailJSON,
	}
	err = db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, insertErr := tx.NewInsert().Model(log).Exec(ctx)
		return insertErr
	})
	if err != nil {
		slog.Error("write activity log", slog.String("action", action), slog.Any("err", err))
	}
}

func marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
