package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// Credentials is the result of a successful authentication: the identity
// record together with the bearer token the backend issued for it.
type Credentials struct {
	User  *models.User
	Token string
}

// Authenticator is the authentication collaborator the session store
// talks to. Implementations: HTTPAuthenticator against the companion
// backend, MockAuthenticator for offline use and tests.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Signup(ctx context.Context, email, password string, metadata models.UserMetadata) (*Credentials, error)
	OAuthLogin(ctx context.Context, provider string) (*Credentials, error)
}

// localPart returns everything before the '@' of an email address,
// used as the default display name.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// MockAuthenticator simulates the authentication backend: every call
// succeeds after a fixed delay and returns a synthesized identity.
type MockAuthenticator struct {
	// Delay is how long each call takes. Zero means no delay.
	Delay time.Duration
}

func (m *MockAuthenticator) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login synthesizes an identity derived from the email.
func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (*Credentials, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &Credentials{
		User: &models.User{
			ID:    "mock-id-" + email,
			Email: email,
			Name:  localPart(email),
		},
		Token: "mock-jwt-for-" + email,
	}, nil
}

// Signup behaves like Login but attaches the supplied metadata.
func (m *MockAuthenticator) Signup(ctx context.Context, email, password string, metadata models.UserMetadata) (*Credentials, error) {
	creds, err := m.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	creds.User.Metadata = &metadata
	return creds, nil
}

// OAuthLogin synthesizes an identity branded with the provider name. A
// real implementation would run an authorization-code flow here; the
// simulated round trip keeps the same contract.
func (m *MockAuthenticator) OAuthLogin(ctx context.Context, provider string) (*Credentials, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &Credentials{
		User: &models.User{
			ID:       "mock-oauth-id-" + provider,
			Email:    provider + "-user@example.com",
			Name:     provider + " User",
			PhotoURL: fmt.Sprintf("https://via.placeholder.com/150/%s.png", provider),
		},
		Token: "mock-jwt-for-" + provider,
	}, nil
}

// HTTPAuthenticator authenticates against the companion backend's
// /auth endpoints.
type HTTPAuthenticator struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAuthenticator returns an authenticator for the backend at
// baseURL. Requests time out after the given duration.
func NewHTTPAuthenticator(baseURL string, timeout time.Duration) *HTTPAuthenticator {
	return &HTTPAuthenticator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// tokenResponse mirrors the backend token endpoints' response body.
type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

func (a *HTTPAuthenticator) post(ctx context.Context, path string, payload any) (*Credentials, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth request failed: status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}
	if tr.AccessToken == "" || tr.User == nil {
		return nil, fmt.Errorf("auth response missing token or user")
	}
	return &Credentials{User: tr.User, Token: tr.AccessToken}, nil
}

// Login exchanges email and password for a token at /auth/login.
func (a *HTTPAuthenticator) Login(ctx context.Context, email, password string) (*Credentials, error) {
	return a.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Signup registers a new account at /auth/signup.
func (a *HTTPAuthenticator) Signup(ctx context.Context, email, password string, metadata models.UserMetadata) (*Credentials, error) {
	return a.post(ctx, "/auth/signup", map[string]any{
		"email":    email,
		"password": password,
		"metadata": metadata,
	})
}

// OAuthLogin is not implemented by the companion backend; the real flow
// would redirect through the provider and exchange a code for a token.
func (a *HTTPAuthenticator) OAuthLogin(ctx context.Context, provider string) (*Credentials, error) {
	return nil, fmt.Errorf("oauth login via %s is not supported by the companion backend", provider)
}
