package entity

import "time"

// Identity is the authenticated principal reconstructed from a verified
// session token. Downstream authorization gates compare the Role field.
type Identity struct {
	Role Role

	// PhoneNumber is set for owner identities.
	PhoneNumber string

	// UID and Email are set for employee identities.
	UID   string
	Email string

	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsOwner reports whether the identity carries the owner role.
func (i *Identity) IsOwner() bool {
	return i.Role == RoleOwner
}

// IsEmployee reports whether the identity carries the employee role.
func (i *Identity) IsEmployee() bool {
	return i.Role == RoleEmployee
}
