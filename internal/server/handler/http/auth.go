// Package http provides the companion server's HTTP handlers.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afzaalahmad/bookpal/internal/models"
	"github.com/afzaalahmad/bookpal/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Signup(ctx context.Context, email, password string, metadata *models.UserMetadata) (*models.User, string, error)
}

// AuthHandler handles login and signup requests.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// loginRequest represents the JSON payload for login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupRequest represents the JSON payload for signup.
type signupRequest struct {
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Metadata *models.UserMetadata `json:"metadata,omitempty"`
}

// tokenResponse is the body returned for successful authentications.
type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

func writeToken(w http.ResponseWriter, user *models.User, token string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Login handles POST /auth/login. It expects a JSON body with non-empty
// email and password and responds with a bearer token and the account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "incorrect username or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeToken(w, user, token)
}

// Signup handles POST /auth/signup. On success it registers the account
// and responds like Login.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Signup(r.Context(), req.Email, req.Password, req.Metadata)
	if errors.Is(err, service.ErrEmailTaken) {
		http.Error(w, "user already exists", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeToken(w, user, token)
}
