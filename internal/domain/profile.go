package domain

// Profile is the cached account record (customer or driver).
type Profile struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// DisplayName returns the name to greet the user with.
func (p *Profile) DisplayName() string {
	if p == nil || p.FullName == "" {
		return "there"
	}
	return p.FullName
}
