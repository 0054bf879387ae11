// Package yamlfile implements file-backed stores encoded as YAML.
package yamlfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/barber/internal/core/session"
)

// SessionFile is the default file name inside the data directory.
const SessionFile = "session.yaml"

// SessionStore implements session.Store using a single YAML file.
type SessionStore struct {
	path string
	mu   sync.RWMutex
}

// NewSessionStore creates a store at path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Path returns the file backing the store.
func (s *SessionStore) Path() string {
	return s.path
}

// Load returns the stored session or session.ErrNotFound.
func (s *SessionStore) Load(ctx context.Context) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}

	var sess session.Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return session.Session{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if !sess.Valid() {
		return session.Session{}, session.ErrNotFound
	}

	return sess, nil
}

// Save writes the session atomically. The file is private to the user.
func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
