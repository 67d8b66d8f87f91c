package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// storedToken is the on-disk shape of a FileSession.
type storedToken struct {
	JWTToken string    `json:"jwt_token"`
	SavedAt  time.Time `json:"saved_at"`
}

// FileSession keeps the token in a private file, for the terminal client.
// A missing or unreadable file means there is no session.
type FileSession struct {
	path string
}

func NewFileSession(path string) *FileSession {
	return &FileSession{path: path}
}

// DefaultSessionPath is ~/.config/jobby/session.json, falling back to the working dir.
func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "jobby-session.json"
	}
	return filepath.Join(dir, "jobby", "session.json")
}

func (s *FileSession) Path() string { return s.path }

func (s *FileSession) Get() (string, bool) {
	tok, err := tokenFromFile(s.path)
	if err != nil || tok.JWTToken == "" {
		return "", false
	}
	return tok.JWTToken, true
}

func (s *FileSession) Set(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return saveToken(s.path, storedToken{JWTToken: token, SavedAt: time.Now().UTC()})
}

func (s *FileSession) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func tokenFromFile(path string) (storedToken, error) {
	var tok storedToken
	f, err := os.Open(path)
	if err != nil {
		return tok, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&tok)
	return tok, err
}

func saveToken(path string, tok storedToken) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
