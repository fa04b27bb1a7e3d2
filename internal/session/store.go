// Package session holds the reader's identity and bearer token for the
// lifetime of the process and persists them across restarts.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// Store is the process-wide session holder. The user and token are
// always both set or both empty. All operations convert collaborator
// failures into a false result; none of them panic or return errors.
type Store struct {
	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool

	auth  Authenticator
	vault *Vault
	log   *zap.Logger

	// onLogout runs after a logout clears the session. The UI installs
	// its navigate-to-start-page behavior here.
	onLogout func()
}

// NewStore builds a Store and restores any persisted session from the
// vault. A vault that fails to parse restores as anonymous.
func NewStore(auth Authenticator, vault *Vault, log *zap.Logger) *Store {
	s := &Store{auth: auth, vault: vault, log: log}
	if vault != nil {
		s.user, s.token = vault.Load()
	}
	return s
}

// SetLogoutFunc installs the side effect run after Logout.
func (s *Store) SetLogoutFunc(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// User returns the current identity, or nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether an operation is in flight. Callers should
// disable dependent UI affordances while true.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	return s.User() != nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// save installs the session in memory and persists it. A persistence
// failure is logged but does not fail the login: the in-memory session
// stays valid for this run.
func (s *Store) save(creds *Credentials) {
	s.mu.Lock()
	s.user = creds.User
	s.token = creds.Token
	s.mu.Unlock()

	if s.vault != nil {
		if err := s.vault.Save(creds.User, creds.Token); err != nil {
			s.log.Warn("failed to persist session", zap.Error(err))
		}
	}
}

// Login validates credentials against the authenticator and establishes
// a session on success. Returns false on any failure.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Warn("login failed", zap.String("email", email), zap.Error(err))
		return false
	}
	s.save(creds)
	return true
}

// Signup registers a new account with the supplied metadata and
// establishes a session on success. Returns false on any failure.
func (s *Store) Signup(ctx context.Context, email, password string, metadata models.UserMetadata) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	creds, err := s.auth.Signup(ctx, email, password, metadata)
	if err != nil {
		s.log.Warn("signup failed", zap.String("email", email), zap.Error(err))
		return false
	}
	s.save(creds)
	return true
}

// OAuthLogin authenticates through the named provider. Returns false on
// any failure.
func (s *Store) OAuthLogin(ctx context.Context, provider string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	creds, err := s.auth.OAuthLogin(ctx, provider)
	if err != nil {
		s.log.Warn("oauth login failed", zap.String("provider", provider), zap.Error(err))
		return false
	}
	s.save(creds)
	return true
}

// Logout clears the session and its persisted copy, then runs the
// installed logout side effect.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	fn := s.onLogout
	s.mu.Unlock()

	if s.vault != nil {
		if err := s.vault.Clear(); err != nil {
			s.log.Warn("failed to clear persisted session", zap.Error(err))
		}
	}
	if fn != nil {
		fn()
	}
}

// UpdateUserMetadata shallow-merges the supplied fields into the current
// user's metadata and re-persists the session. Returns false when no
// session is active.
func (s *Store) UpdateUserMetadata(ctx context.Context, metadata models.UserMetadata) bool {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return false
	}
	updated := *s.user
	merged := metadata
	if s.user.Metadata != nil {
		merged = s.user.Metadata.Merge(metadata)
	}
	updated.Metadata = &merged
	token := s.token
	s.mu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	s.save(&Credentials{User: &updated, Token: token})
	return true
}
