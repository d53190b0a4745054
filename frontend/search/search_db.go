package search

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"savor/infrastructure/sqlite"
	"savor/models"
)

// SavePendingSearch stores a search submitted from a page without the
// results container, to be replayed when the index view next renders. A
// later submission overwrites an earlier one.
func SavePendingSearch(ctx context.Context, db *sqlite.DB, sessionID string, q Query) error {
	pending := &models.PendingSearch{
		SessionID:   sessionID,
		Barcode:     q.Barcode,
		ProductName: q.ProductName,
		WasScanned:  q.WasScanned,
	}
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(pending).
			On("CONFLICT (session_id) DO UPDATE").
			Set("barcode = EXCLUDED.barcode").
			Set("product_name = EXCLUDED.product_name").
			Set("was_scanned = EXCLUDED.was_scanned").
			Set("created_at = CURRENT_TIMESTAMP").
			Exec(ctx)
		return err
	})
}

// TakePendingSearch pops the session's stored search, if any. Read and
// delete happen in one write transaction so a stored query is replayed at
// most once no matter how often the index view renders.
func TakePendingSearch(ctx context.Context, db *sqlite.DB, sessionID string) (Query, bool, error) {
	var pending models.PendingSearch
	found := false
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(&pending).
			Where("session_id = ?", sessionID).
			Scan(ctx)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		_, err = tx.NewDelete().
			Model((*models.PendingSearch)(nil)).
			Where("session_id = ?", sessionID).
			Exec(ctx)
		return err
	})
	if err != nil || !found {
		return Query{}, false, err
	}
	return Query{
		Barcode:     pending.Barcode,
		ProductName: pending.ProductName,
		Page:        1,
		WasScanned:  pending.WasScanned,
	}, true, nil
}
