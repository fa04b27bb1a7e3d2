package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/afzaalahmad/bookpal/internal/models"
)

func TestVault_LoadMissing(t *testing.T) {
	v := NewVault(filepath.Join(t.TempDir(), "state"))
	user, token := v.Load()
	if user != nil || token != "" {
		t.Errorf("expected anonymous load, got user=%+v token=%q", user, token)
	}
}

func TestVault_SaveLoadRoundTrip(t *testing.T) {
	v := NewVault(t.TempDir())
	in := &models.User{ID: "u1", Email: "a@x.com", Name: "a"}
	if err := v.Save(in, "tok-1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	user, token := v.Load()
	if user == nil || user.Email != "a@x.com" || user.Name != "a" {
		t.Errorf("unexpected user: %+v", user)
	}
	if token != "tok-1" {
		t.Errorf("expected token tok-1, got %q", token)
	}
}

func TestVault_LoadCorruptUser(t *testing.T) {
	dir := t.TempDir()
	v := NewVault(dir)
	os.WriteFile(filepath.Join(dir, userFile), []byte("not json"), 0o600)
	os.WriteFile(filepath.Join(dir, tokenFile), []byte("tok"), 0o600)

	user, token := v.Load()
	if user != nil || token != "" {
		t.Errorf("corrupt user file must load as anonymous, got user=%+v token=%q", user, token)
	}
}

func TestVault_LoadPartialState(t *testing.T) {
	dir := t.TempDir()
	v := NewVault(dir)
	// user present, token missing: must not yield a half-session
	os.WriteFile(filepath.Join(dir, userFile), []byte(`{"id":"u","email":"a@x.com"}`), 0o600)

	user, token := v.Load()
	if user != nil || token != "" {
		t.Errorf("partial state must load as anonymous, got user=%+v token=%q", user, token)
	}
}

func TestVault_ClearRemovesBoth(t *testing.T) {
	dir := t.TempDir()
	v := NewVault(dir)
	if err := v.Save(&models.User{ID: "u", Email: "a@x.com"}, "tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := v.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	for _, name := range []string{userFile, tokenFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", name)
		}
	}
	// idempotent
	if err := v.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
