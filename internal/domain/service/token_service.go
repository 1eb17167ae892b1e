// Package service defines the interfaces for domain services whose
// concrete implementations live in the infrastructure layer.
package service

import "staffhub/internal/domain/entity"

// TokenService mints and verifies the signed, self-contained session
// tokens that prove a completed login challenge.
//
// Verify is the single shared signature/expiry routine: both the request
// middleware and the boot-time re-authentication path must go through it
// so the two paths cannot drift.
type TokenService interface {
	// Issue signs a token for the identity with the role-specific
	// lifetime (owner 1 hour, employee 8 hours).
	Issue(identity *entity.Identity) (string, error)

	// Verify checks signature and expiry and reconstructs the identity.
	Verify(token string) (*entity.Identity, error)
}
