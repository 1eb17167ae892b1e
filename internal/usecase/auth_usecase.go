// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"staffhub/internal/domain/entity"
)

// --- Input DTOs ---

// RequestOwnerCodeInput identifies the phone number to challenge. Owner
// phone numbers are not pre-registered; any well-formed number may ask
// for a code.
type RequestOwnerCodeInput struct {
	PhoneNumber string
}

// ValidateOwnerCodeInput carries the owner's claimed code.
type ValidateOwnerCodeInput struct {
	PhoneNumber string
	AccessCode  string
}

// RequestEmployeeCodeInput identifies the employee email to challenge.
// The email must belong to a known employee.
type RequestEmployeeCodeInput struct {
	Email string
}

// ValidateEmployeeCodeInput carries the employee's claimed code.
type ValidateEmployeeCodeInput struct {
	Email      string
	AccessCode string
}

// PasswordLoginInput carries the employee's password credentials.
type PasswordLoginInput struct {
	Email    string
	Password string
}

// VerifyTokenInput carries a client-stored token for boot-time
// re-authentication.
type VerifyTokenInput struct {
	Token string
}

// --- Output DTOs ---

// TokenOutput returns the signed session token after a successful login.
type TokenOutput struct {
	Token string
}

// VerifyTokenOutput returns the identity reconstructed from a valid token.
type VerifyTokenOutput struct {
	Identity *entity.Identity
}

// AuthUsecase defines the interface for the login challenge and session
// token operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// RequestOwnerCode issues a fresh challenge for the phone number and
	// hands the code to the SMS transport. The code is never returned.
	RequestOwnerCode(ctx context.Context, input *RequestOwnerCodeInput) error

	// ValidateOwnerCode consumes the challenge and mints an owner token.
	ValidateOwnerCode(ctx context.Context, input *ValidateOwnerCodeInput) (*TokenOutput, error)

	// RequestEmployeeCode issues a fresh challenge for a known employee's
	// email and hands the code to the mail transport.
	RequestEmployeeCode(ctx context.Context, input *RequestEmployeeCodeInput) error

	// ValidateEmployeeCode consumes the challenge and mints an employee token.
	ValidateEmployeeCode(ctx context.Context, input *ValidateEmployeeCodeInput) (*TokenOutput, error)

	// LoginWithPassword authenticates an employee by password and mints
	// an employee token.
	LoginWithPassword(ctx context.Context, input *PasswordLoginInput) (*TokenOutput, error)

	// VerifyToken re-validates a client-stored token. It runs the same
	// signature and expiry checks as the request middleware; employee
	// identities are additionally checked against the employee store.
	VerifyToken(ctx context.Context, input *VerifyTokenInput) (*VerifyTokenOutput, error)
}
