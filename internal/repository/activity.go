package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// ActivityRepository stores tracked user actions.
type ActivityRepository struct {
	DB *sql.DB
}

// NewActivityRepository creates an ActivityRepository with the given
// database connection.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Insert stores one event and returns the persisted row.
func (r *ActivityRepository) Insert(ctx context.Context, event models.ActivityEvent) (models.ActivityLog, error) {
	now := time.Now().UTC()
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO activity_log (user_id, email, action, resource_id, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		event.UserID, event.Email, event.Action, event.ResourceID, now,
	)
	if err != nil {
		return models.ActivityLog{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ActivityLog{}, err
	}
	return models.ActivityLog{
		ID:         id,
		UserID:     event.UserID,
		Email:      event.Email,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		CreatedAt:  now,
	}, nil
}
