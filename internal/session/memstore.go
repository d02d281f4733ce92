package session

import (
	"sync"

	"shipfront/internal/domain"
)

// MemStore is an in-memory Store for tests and ephemeral runs.
type MemStore struct {
	mu       sync.Mutex
	token    string
	profile  *domain.Profile
	selected int64
}

// NewMemStore returns an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Token returns the bearer token, if present.
func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetSession stores a fresh token and optional cached profile.
func (s *MemStore) SetSession(token string, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = profile
	s.selected = 0
	return nil
}

// Clear destroys the session.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	s.selected = 0
	return nil
}

// Profile returns the cached profile, if present.
func (s *MemStore) Profile() (*domain.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, false
	}
	p := *s.profile
	return &p, true
}

// SelectedShipment returns the last shipment id opened on a detail page.
func (s *MemStore) SelectedShipment() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected > 0
}

// SetSelectedShipment remembers the shipment id for the detail page.
func (s *MemStore) SetSelectedShipment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	return nil
}

var _ Store = (*MemStore)(nil)
