// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"staffhub/internal/domain/entity"
)

// ErrChallengeNotFound is returned when no challenge record exists for a subject.
var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeRepository is the keyed store holding at most one pending OTP
// challenge per subject. The store must guarantee atomic read-modify-write
// per key; a validation racing a re-issuance resolves last-writer-wins.
type ChallengeRepository interface {
	// Save persists the challenge keyed by its subject, silently
	// overwriting any prior challenge for the same subject.
	Save(ctx context.Context, challenge *entity.Challenge) error

	// Find retrieves the pending challenge for a subject, or
	// ErrChallengeNotFound when none exists.
	Find(ctx context.Context, subject string) (*entity.Challenge, error)

	// Delete removes the challenge for a subject. Deleting an absent
	// challenge is not an error.
	Delete(ctx context.Context, subject string) error
}
