// Package auth holds the session contract every authenticated view depends on.
// The token is opaque to this package; it is only stored, read and dropped.
package auth

import (
	"errors"
	"sync"
)

// Session is the injected home of the bearer token.
// Get never blocks and never touches the network.
type Session interface {
	Get() (string, bool)
	Set(token string) error
	Clear() error
}

var ErrEmptyToken = errors.New("auth: empty token")

// MemorySession keeps the token in process memory.
type MemorySession struct {
	mu    sync.RWMutex
	token string
}

func NewMemorySession(token string) *MemorySession {
	return &MemorySession{token: token}
}

func (s *MemorySession) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemorySession) Set(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemorySession) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
