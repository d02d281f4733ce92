package session

import "shipfront/internal/domain"

// Store persists the portal session across page loads and restarts.
// Token presence is the sole authentication signal the portal consults;
// no local token validation or expiry inspection happens here.
type Store interface {
	// Token returns the bearer token, if a session exists.
	Token() (string, bool)
	// SetSession stores a fresh token and optional cached profile.
	SetSession(token string, profile *domain.Profile) error
	// Clear destroys the session. Clearing an absent session is a no-op.
	Clear() error
	// Profile returns the cached profile. A malformed cached profile is
	// treated as absent, never surfaced as an error.
	Profile() (*domain.Profile, bool)
	// SelectedShipment returns the last shipment id opened on a detail page.
	SelectedShipment() (int64, bool)
	// SetSelectedShipment remembers the shipment id for the detail page.
	SetSelectedShipment(id int64) error
}
