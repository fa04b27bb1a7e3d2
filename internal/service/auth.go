// Package service provides the companion server's business logic,
// delegating persistence to repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/afzaalahmad/bookpal/internal/auth"
	"github.com/afzaalahmad/bookpal/internal/models"
	"github.com/afzaalahmad/bookpal/internal/repository"
)

// ErrInvalidCredentials is returned for a wrong email/password pair.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrEmailTaken mirrors the repository error for handler convenience.
var ErrEmailTaken = repository.ErrEmailTaken

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User, passwordHash []byte) error
	UserByEmail(ctx context.Context, email string) (*models.User, []byte, error)
}

// AuthService implements login and signup, issuing bearer tokens for
// successful authentications.
type AuthService struct {
	repo     UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService. secret signs the issued
// tokens; tokenTTL bounds their validity.
func NewAuthService(repo UserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Login verifies the password for email and returns the account with a
// fresh token. Returns ErrInvalidCredentials for unknown emails and
// wrong passwords alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, hash, err := s.repo.UserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Signup registers a new account and returns it with a fresh token.
// The display name defaults to the email local part.
func (s *AuthService) Signup(ctx context.Context, email, password string, metadata *models.UserMetadata) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Metadata: metadata,
	}
	if err := s.repo.CreateUser(ctx, user, hash); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &user, token, nil
}
