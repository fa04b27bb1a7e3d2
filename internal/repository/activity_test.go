package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/afzaalahmad/bookpal/internal/models"
)

func TestActivityInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer db.Close()
	repo := NewActivityRepository(db)

	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs("u1", "a@x.com", "translate_to_urdu", "week1/intro", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	log, err := repo.Insert(context.Background(), models.ActivityEvent{
		UserID:     "u1",
		Email:      "a@x.com",
		Action:     "translate_to_urdu",
		ResourceID: "week1/intro",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.ID != 7 || log.Action != "translate_to_urdu" {
		t.Errorf("unexpected log row: %+v", log)
	}
	if log.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestActivityInsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer db.Close()
	repo := NewActivityRepository(db)

	mock.ExpectExec("INSERT INTO activity_log").
		WillReturnError(errors.New("insert failed"))

	if _, err := repo.Insert(context.Background(), models.ActivityEvent{UserID: "u1"}); err == nil {
		t.Error("expected error, got nil")
	}
}
