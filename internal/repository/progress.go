package repository

import (
	"context"
	"database/sql"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// ProgressRepository stores per-week reading progress.
type ProgressRepository struct {
	DB *sql.DB
}

// NewProgressRepository creates a ProgressRepository with the given
// database connection.
func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert inserts or updates the completion for one user/week pair.
func (r *ProgressRepository) Upsert(ctx context.Context, p models.Progress) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO progress (id, user_id, week_number, completion_percent)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(user_id, week_number)
         DO UPDATE SET completion_percent = excluded.completion_percent`,
		p.ID, p.UserID, p.WeekNumber, p.CompletionPercent,
	)
	return err
}

// ListByUser returns a user's progress rows ordered by week.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, user_id, week_number, completion_percent FROM progress
          WHERE user_id = ? ORDER BY week_number`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Progress{}
	for rows.Next() {
		var p models.Progress
		if err := rows.Scan(&p.ID, &p.UserID, &p.WeekNumber, &p.CompletionPercent); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
