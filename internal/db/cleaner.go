package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartActivityCleaner prunes old activity rows with interval
func StartActivityCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM activity_log
                     WHERE created_at < ?
                `, cutoff)
				if err != nil {
					log.Error("failed to clean old activity rows", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned old activity rows", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
