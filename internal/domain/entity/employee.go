package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeStatus is the lifecycle state of an employee record.
type EmployeeStatus string

const (
	// EmployeeActive is the default status for newly created staff.
	EmployeeActive EmployeeStatus = "active"
	// EmployeeInactive marks staff that no longer work here but whose
	// records are kept.
	EmployeeInactive EmployeeStatus = "inactive"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeActive || s == EmployeeInactive
}

// Employee is a staff record managed by the owner. Email doubles as the
// login identifier for the employee OTP and password flows.
type Employee struct {
	ID          uuid.UUID      // Unique identifier, also the "uid" claim in employee tokens.
	Name        string         // Display name.
	Email       string         // Login identifier, unique across employees.
	JobTitle    string         // Free-form position label (e.g. "cashier").
	PhoneNumber string         // Contact number, E.164.
	Status      EmployeeStatus // active or inactive.

	// PasswordHash holds the bcrypt hash of the employee's password. A
	// temporary password is assigned at creation and replaced when the
	// employee completes account setup.
	PasswordHash string
	// PasswordSet is true once the employee has chosen their own password.
	PasswordSet bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
