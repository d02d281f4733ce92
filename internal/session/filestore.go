package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"shipfront/internal/domain"
)

// fileState is the on-disk session shape. The profile stays a raw message so
// a corrupt cached value degrades to "absent" instead of losing the token.
type fileState struct {
	Token            string          `json:"token,omitempty"`
	Profile          json.RawMessage `json:"profile,omitempty"`
	SelectedShipment int64           `json:"selected_shipment_id,omitempty"`
}

// FileStore is a Store backed by a single JSON file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state fileState
}

// NewFileStore loads (or initializes) a session file at path.
// An unreadable or corrupt file yields an empty session, not an error.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session: empty file path")
	}
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		s.state = fileState{}
	}
	return s, nil
}

// Token returns the bearer token, if present.
func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token, s.state.Token != ""
}

// SetSession stores a fresh token and optional cached profile.
func (s *FileStore) SetSession(token string, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fileState{Token: token}
	if profile != nil {
		raw, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("session: marshal profile: %w", err)
		}
		s.state.Profile = raw
	}
	return s.flush()
}

// Clear destroys the session.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fileState{}
	return s.flush()
}

// Profile returns the cached profile; malformed data is treated as absent.
func (s *FileStore) Profile() (*domain.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Profile) == 0 {
		return nil, false
	}
	var p domain.Profile
	if err := json.Unmarshal(s.state.Profile, &p); err != nil {
		return nil, false
	}
	return &p, true
}

// SelectedShipment returns the last shipment id opened on a detail page.
func (s *FileStore) SelectedShipment() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedShipment, s.state.SelectedShipment > 0
}

// SetSelectedShipment remembers the shipment id for the detail page.
func (s *FileStore) SetSelectedShipment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedShipment = id
	return s.flush()
}

// flush writes the state atomically. Callers must hold the lock.
func (s *FileStore) flush() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("session: marshal state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: mkdir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
