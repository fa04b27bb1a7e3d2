// Package repository provides SQLite persistence for the companion server.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when a signup reuses an existing email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository stores reader accounts.
type UserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewUserRepository creates a UserRepository with the given database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new account. Returns ErrEmailTaken when the
// email is already registered.
func (r *UserRepository) CreateUser(ctx context.Context, user models.User, passwordHash []byte) error {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`,
		user.Email,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	var metadata []byte
	if user.Metadata != nil {
		metadata, err = json.Marshal(user.Metadata)
		if err != nil {
			return err
		}
	}
	_, err = r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, email, name, photo_url, password_hash, metadata)
         VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.PhotoURL, passwordHash, nullableString(metadata),
	)
	return err
}

// UserByEmail fetches an account and its password hash by email.
// Returns ErrNotFound when no such account exists.
func (r *UserRepository) UserByEmail(ctx context.Context, email string) (*models.User, []byte, error) {
	var (
		user     models.User
		hash     []byte
		metadata sql.NullString
	)
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, email, name, photo_url, password_hash, metadata FROM users WHERE email = ?`,
		email,
	).Scan(&user.ID, &user.Email, &user.Name, &user.PhotoURL, &hash, &metadata)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if metadata.Valid && metadata.String != "" {
		var m models.UserMetadata
		if err := json.Unmarshal([]byte(metadata.String), &m); err == nil {
			user.Metadata = &m
		}
	}
	return &user, hash, nil
}

// UserByID fetches an account by id. Returns ErrNotFound when missing.
func (r *UserRepository) UserByID(ctx context.Context, id string) (*models.User, error) {
	var (
		user     models.User
		metadata sql.NullString
	)
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, email, name, photo_url, metadata FROM users WHERE id = ?`,
		id,
	).Scan(&user.ID, &user.Email, &user.Name, &user.PhotoURL, &metadata)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if metadata.Valid && metadata.String != "" {
		var m models.UserMetadata
		if err := json.Unmarshal([]byte(metadata.String), &m); err == nil {
			user.Metadata = &m
		}
	}
	return &user, nil
}

func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
