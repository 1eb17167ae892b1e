package repository

import (
	"context"
	"errors"

	"staffhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is a domain-specific error returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrEmployeeExists is returned when a create or update collides with an
// existing employee's unique email.
var ErrEmployeeExists = errors.New("employee already exists")

// EmployeeRepository defines the standard operations for employee persistence.
// The application layer depends on this interface, not the concrete implementation.
type EmployeeRepository interface {
	// Create persists a new employee record.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindByID retrieves a single employee by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindByEmail retrieves a single employee by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// List retrieves all employee records.
	List(ctx context.Context) ([]*entity.Employee, error)

	// Update modifies an existing employee record.
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes an employee record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
