package usecase

import (
	"context"

	"github.com/google/uuid"

	"staffhub/internal/domain/entity"
)

// --- Input DTOs ---

// CreateEmployeeInput defines the data required to create a staff record.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	JobTitle    string
	PhoneNumber string
}

// UpdateEmployeeInput carries a partial update; nil fields are left untouched.
type UpdateEmployeeInput struct {
	ID          uuid.UUID
	Name        *string
	Email       *string
	JobTitle    *string
	PhoneNumber *string
	Status      *string
}

// SetPasswordInput carries the employee's chosen permanent password.
type SetPasswordInput struct {
	ID          uuid.UUID
	Email       string
	NewPassword string
}

// --- Output DTOs ---

// EmployeeOutput returns a single staff record.
type EmployeeOutput struct {
	Employee *entity.Employee
}

// EmployeeListOutput returns all staff records.
type EmployeeListOutput struct {
	Employees []*entity.Employee
}

// EmployeeUsecase defines the interface for staff record management.
type EmployeeUsecase interface {
	// Create adds a staff record, assigns a temporary password and sends
	// the onboarding mail with the account setup link.
	Create(ctx context.Context, input CreateEmployeeInput) (*EmployeeOutput, error)

	// Get retrieves one staff record by ID.
	Get(ctx context.Context, id uuid.UUID) (*EmployeeOutput, error)

	// GetSelf retrieves the staff record belonging to an authenticated
	// employee identity.
	GetSelf(ctx context.Context, identity *entity.Identity) (*EmployeeOutput, error)

	// List retrieves all staff records.
	List(ctx context.Context) (*EmployeeListOutput, error)

	// Update applies a partial update to a staff record.
	Update(ctx context.Context, input UpdateEmployeeInput) (*EmployeeOutput, error)

	// Delete removes a staff record.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPassword replaces the temporary password with the employee's
	// chosen one.
	SetPassword(ctx context.Context, input SetPasswordInput) error
}
