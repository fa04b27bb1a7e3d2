package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/afzaalahmad/bookpal/internal/models"
)

const (
	userFile  = "user.json"
	tokenFile = "token"
)

// Vault persists the session to two fixed-name files in a state
// directory: a JSON identity record and a plain bearer-token string.
// Both are always written or removed together.
type Vault struct {
	dir string
}

// NewVault returns a Vault rooted at dir. The directory is created
// lazily on the first Save.
func NewVault(dir string) *Vault {
	return &Vault{dir: dir}
}

// Load restores a persisted session. A missing, partial or unparseable
// state is reported as no session (nil user, empty token) — never as an
// error, so a corrupt state dir cannot break startup.
func (v *Vault) Load() (*models.User, string) {
	rawUser, err := os.ReadFile(filepath.Join(v.dir, userFile))
	if err != nil {
		return nil, ""
	}
	rawToken, err := os.ReadFile(filepath.Join(v.dir, tokenFile))
	if err != nil {
		return nil, ""
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil || user.Email == "" {
		return nil, ""
	}
	token := strings.TrimSpace(string(rawToken))
	if token == "" {
		return nil, ""
	}
	return &user, token
}

// Save writes the user and token. The token file is written last so a
// crash mid-save leaves a state Load treats as no session.
func (v *Vault) Save(user *models.User, token string) error {
	if err := os.MkdirAll(v.dir, 0o700); err != nil {
		return err
	}
	buf, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(v.dir, userFile), buf, 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(v.dir, tokenFile), []byte(token), 0o600)
}

// Clear removes both persisted entries. Removing an already-absent
// entry is not an error.
func (v *Vault) Clear() error {
	var firstErr error
	for _, name := range []string{userFile, tokenFile} {
		if err := os.Remove(filepath.Join(v.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
