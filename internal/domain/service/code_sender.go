package service

import "context"

// CodeSender is the out-of-band delivery collaborator for login codes and
// onboarding mail. Delivery failures are reported to the caller but must
// not invalidate an already persisted challenge: a persisted-but-undelivered
// code stays valid (at-least-once delivery semantics).
type CodeSender interface {
	// SendOwnerCode delivers a login code to the owner's phone via SMS.
	SendOwnerCode(ctx context.Context, phoneNumber, code string) error

	// SendEmployeeCode delivers a login code to an employee's email.
	SendEmployeeCode(ctx context.Context, email, name, code string) error

	// SendWelcome delivers the onboarding email with the temporary
	// password and the account setup link.
	SendWelcome(ctx context.Context, email, name, tempPassword, setupLink string) error
}
