package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/afzaalahmad/bookpal/internal/models"
)

// failingAuthenticator rejects every operation.
type failingAuthenticator struct{}

func (f *failingAuthenticator) Login(ctx context.Context, email, password string) (*Credentials, error) {
	return nil, errors.New("login rejected")
}
func (f *failingAuthenticator) Signup(ctx context.Context, email, password string, metadata models.UserMetadata) (*Credentials, error) {
	return nil, errors.New("signup rejected")
}
func (f *failingAuthenticator) OAuthLogin(ctx context.Context, provider string) (*Credentials, error) {
	return nil, errors.New("oauth rejected")
}

func checkInvariant(t *testing.T, s *Store) {
	t.Helper()
	user, token := s.User(), s.Token()
	if (user == nil) != (token == "") {
		t.Fatalf("session invariant violated: user=%+v token=%q", user, token)
	}
}

func TestStore_LoginSuccess(t *testing.T) {
	s := NewStore(&MockAuthenticator{}, NewVault(t.TempDir()), zap.NewNop())

	if !s.Login(context.Background(), "a@x.com", "pw") {
		t.Fatal("expected login to succeed")
	}
	checkInvariant(t, s)

	user := s.User()
	if user.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", user.Email)
	}
	if user.Name != "a" {
		t.Errorf("expected name a, got %q", user.Name)
	}
	if s.Token() == "" {
		t.Error("expected a token after login")
	}
	if s.Loading() {
		t.Error("loading flag must be cleared after login")
	}
}

func TestStore_LoginFailureStaysAnonymous(t *testing.T) {
	s := NewStore(&failingAuthenticator{}, NewVault(t.TempDir()), zap.NewNop())

	if s.Login(context.Background(), "a@x.com", "pw") {
		t.Fatal("expected login to fail")
	}
	checkInvariant(t, s)
	if s.User() != nil {
		t.Error("failed login must leave the store anonymous")
	}
}

func TestStore_SignupAttachesMetadata(t *testing.T) {
	s := NewStore(&MockAuthenticator{}, NewVault(t.TempDir()), zap.NewNop())

	meta := models.UserMetadata{SoftwareBackground: models.SoftwareBeginner}
	if !s.Signup(context.Background(), "b@x.com", "pw", meta) {
		t.Fatal("expected signup to succeed")
	}
	user := s.User()
	if user.Metadata == nil || user.Metadata.SoftwareBackground != models.SoftwareBeginner {
		t.Errorf("expected signup metadata to be attached, got %+v", user.Metadata)
	}
}

func TestStore_OAuthLoginBrandsProvider(t *testing.T) {
	s := NewStore(&MockAuthenticator{}, NewVault(t.TempDir()), zap.NewNop())

	if !s.OAuthLogin(context.Background(), "github") {
		t.Fatal("expected oauth login to succeed")
	}
	user := s.User()
	if user.ID != "mock-oauth-id-github" {
		t.Errorf("unexpected oauth id: %q", user.ID)
	}
	if user.Email != "github-user@example.com" {
		t.Errorf("unexpected oauth email: %q", user.Email)
	}
	checkInvariant(t, s)
}

func TestStore_LogoutClearsSessionAndColdStartIsAnonymous(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(&MockAuthenticator{}, NewVault(dir), zap.NewNop())
	if !s.Login(context.Background(), "a@x.com", "pw") {
		t.Fatal("login failed")
	}

	var redirected bool
	s.SetLogoutFunc(func() { redirected = true })
	s.Logout()

	checkInvariant(t, s)
	if s.User() != nil {
		t.Error("logout must clear the in-memory session")
	}
	if !redirected {
		t.Error("logout must run the installed side effect")
	}

	// cold start from the same vault
	restarted := NewStore(&MockAuthenticator{}, NewVault(dir), zap.NewNop())
	if restarted.User() != nil || restarted.Token() != "" {
		t.Error("cold start after logout must be anonymous")
	}
}

func TestStore_RestoresPersistedSession(t *testing.T) {
	dir := t.TempDir()
	first := NewStore(&MockAuthenticator{}, NewVault(dir), zap.NewNop())
	if !first.Login(context.Background(), "a@x.com", "pw") {
		t.Fatal("login failed")
	}

	second := NewStore(&MockAuthenticator{}, NewVault(dir), zap.NewNop())
	checkInvariant(t, second)
	if second.User() == nil || second.User().Email != "a@x.com" {
		t.Errorf("expected restored session for a@x.com, got %+v", second.User())
	}
}

func TestStore_UpdateUserMetadata(t *testing.T) {
	t.Run("no active session", func(t *testing.T) {
		dir := t.TempDir()
		s := NewStore(&MockAuthenticator{}, NewVault(dir), zap.NewNop())
		if s.UpdateUserMetadata(context.Background(), models.UserMetadata{SoftwareBackground: models.SoftwareAdvanced}) {
			t.Fatal("expected false with no active session")
		}
		if user, token := NewVault(dir).Load(); user != nil || token != "" {
			t.Error("no persisted state change expected")
		}
	})

	t.Run("shallow merge keeps existing keys", func(t *testing.T) {
		s := NewStore(&MockAuthenticator{}, NewVault(t.TempDir()), zap.NewNop())
		if !s.Signup(context.Background(), "a@x.com", "pw", models.UserMetadata{
			SoftwareBackground: models.SoftwareBeginner,
			HardwareBackground: models.HardwareBasic,
		}) {
			t.Fatal("signup failed")
		}

		if !s.UpdateUserMetadata(context.Background(), models.UserMetadata{SoftwareBackground: models.SoftwareAdvanced}) {
			t.Fatal("expected update to succeed")
		}
		meta := s.User().Metadata
		if meta.SoftwareBackground != models.SoftwareAdvanced {
			t.Errorf("supplied key must win, got %q", meta.SoftwareBackground)
		}
		if meta.HardwareBackground != models.HardwareBasic {
			t.Errorf("omitted key must keep its value, got %q", meta.HardwareBackground)
		}
	})
}

func TestMockAuthenticator_HonorsContext(t *testing.T) {
	auth := &MockAuthenticator{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := auth.Login(ctx, "a@x.com", "pw"); err == nil {
		t.Error("expected a context error for a canceled login")
	}
}
