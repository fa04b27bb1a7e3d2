package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/afzaalahmad/bookpal/internal/models"
)

func setupNoteMock(t *testing.T) (*NoteRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewNoteRepository(db)
	return repo, mock, func() { db.Close() }
}

func TestNoteCreateAndList(t *testing.T) {
	repo, mock, cleanup := setupNoteMock(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO notes").
		WithArgs("n1", "u1", "remember", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, user_id, content, created_at FROM notes").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"}).
			AddRow("n1", "u1", "remember", now))

	err := repo.Create(context.Background(), models.Note{ID: "n1", UserID: "u1", Content: "remember", CreatedAt: now})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	notes, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Content != "remember" {
		t.Errorf("unexpected notes: %+v", notes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestNoteDelete_NotFound(t *testing.T) {
	repo, mock, cleanup := setupNoteMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("nX", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "u1", "nX")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNoteDelete_OtherUsersNoteStays(t *testing.T) {
	repo, mock, cleanup := setupNoteMock(t)
	defer cleanup()

	// the user_id predicate keeps user u2 from deleting u1's note
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("n1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "u2", "n1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
