// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of principal a session token was minted for.
type Role string

const (
	// RoleOwner indicates the business owner, authenticated by phone OTP.
	RoleOwner Role = "owner"
	// RoleEmployee indicates a staff member, authenticated by email OTP or password.
	RoleEmployee Role = "employee"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleEmployee:
		return true
	default:
		return false
	}
}
