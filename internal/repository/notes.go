package repository

import (
	"context"
	"database/sql"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// NoteRepository stores reader notes.
type NoteRepository struct {
	DB *sql.DB
}

// NewNoteRepository creates a NoteRepository with the given database
// connection.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

// Create inserts a note.
func (r *NoteRepository) Create(ctx context.Context, note models.Note) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO notes (id, user_id, content, created_at) VALUES (?, ?, ?, ?)`,
		note.ID, note.UserID, note.Content, note.CreatedAt,
	)
	return err
}

// ListByUser returns a user's notes, newest first.
func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]models.Note, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, user_id, content, created_at FROM notes
          WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Delete removes a user's note. Returns ErrNotFound when the note does
// not exist or belongs to another user.
func (r *NoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	res, err := r.DB.ExecContext(
		ctx,
		`DELETE FROM notes WHERE id = ? AND user_id = ?`,
		noteID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
