package postgres

import (
	"context"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
// It returns the repository as a repository.EmployeeRepository interface,
// adhering to dependency inversion.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create persists a new employee record. A duplicate email surfaces as
// repository.ErrEmployeeExists.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	m := model.EmployeeModelFromDomain(employee)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmployeeExists
		}

		return errors.Wrap(err, "failed to create employee")
	}

	// The database assigns ID and timestamps; reflect them back.
	employee.ID = m.ID
	employee.CreatedAt = m.CreatedAt
	employee.UpdatedAt = m.UpdatedAt

	return nil
}

// FindByID retrieves a single employee by their unique ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var m model.EmployeeModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return m.ToDomain(), nil
}

// FindByEmail retrieves a single employee by their email address.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var m model.EmployeeModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	return m.ToDomain(), nil
}

// List retrieves all employee records ordered by creation time.
func (repo *employeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var ms []model.EmployeeModel

	if err := repo.db.WithContext(ctx).Order("created_at").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(ms))
	for i := range ms {
		employees = append(employees, ms[i].ToDomain())
	}

	return employees, nil
}

// Update modifies an existing employee record.
func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	m := model.EmployeeModelFromDomain(employee)

	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":          m.Name,
			"email":         m.Email,
			"job_title":     m.JobTitle,
			"phone_number":  m.PhoneNumber,
			"status":        m.Status,
			"password_hash": m.PasswordHash,
			"password_set":  m.PasswordSet,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmployeeExists
		}

		return errors.Wrap(result.Error, "failed to update employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee record by ID.
func (repo *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmployeeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}
