package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/afzaalahmad/bookpal/internal/auth"
)

func TestBearerAuth(t *testing.T) {
	secret := []byte("test-secret")
	validToken, err := auth.GenerateToken("user-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var gotUserID string
	handler := BearerAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{"no header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, ""},
		{"valid token", "Bearer " + validToken, http.StatusOK, "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/activity/track", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if gotUserID != tt.expectedUser {
				t.Errorf("expected user %q in context, got %q", tt.expectedUser, gotUserID)
			}
		})
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := GetUserIDFromContext(req.Context()); got != "" {
		t.Errorf("expected empty user id, got %q", got)
	}
}
