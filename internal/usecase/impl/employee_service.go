package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"net/url"
	"time"

	"staffhub/config"
	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/domain/service"
	"staffhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tempPasswordLength  = 8
	tempPasswordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	minPasswordLength = 6
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employees    repository.EmployeeRepository
	hasher       service.PasswordHasher
	sender       service.CodeSender
	setupBaseURL string
	logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(
	employees repository.EmployeeRepository,
	hasher service.PasswordHasher,
	sender service.CodeSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EmployeeUsecase {
	return &employeeService{
		employees:    employees,
		hasher:       hasher,
		sender:       sender,
		setupBaseURL: cfg.Delivery.SetupBaseURL,
		logger:       logger,
	}
}

func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// generateTempPassword produces a random alphanumeric password. Ambiguous
// characters (0/O, 1/l/I) are excluded from the charset.
func generateTempPassword() (string, error) {
	password := make([]byte, tempPasswordLength)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordCharset))))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}

		password[i] = tempPasswordCharset[n.Int64()]
	}

	return string(password), nil
}

// setupLink builds the account setup URL included in the welcome mail.
func (srv *employeeService) setupLink(employee *entity.Employee) string {
	query := url.Values{}
	query.Set("uid", employee.ID.String())
	query.Set("email", employee.Email)

	return srv.setupBaseURL + "?" + query.Encode()
}

// Create adds a staff record with a generated temporary password and sends
// the welcome mail. The temporary password is immediately usable for login.
func (srv *employeeService) Create(ctx context.Context, input usecase.CreateEmployeeInput) (*usecase.EmployeeOutput, error) {
	srv.log(ctx).Info("Creating employee", slog.String("email", input.Email))

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate temporary password")
	}

	passwordHash, err := srv.hasher.Hash(tempPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash temporary password")
	}

	employee := &entity.Employee{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		JobTitle:     input.JobTitle,
		PhoneNumber:  input.PhoneNumber,
		Status:       entity.EmployeeActive,
		PasswordHash: passwordHash,
		PasswordSet:  false,
	}

	if err := srv.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrEmployeeExists) {
			return nil, errors.Wrap(domainerrors.ErrEmployeeExists, "email already registered")
		}

		srv.log(ctx).Error("Failed to create employee", slog.Any("error", err), slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to create employee")
	}

	// The record is committed at this point; a failed welcome mail is
	// logged and the owner can resend credentials later.
	if err := srv.sender.SendWelcome(ctx, employee.Email, employee.Name, tempPassword, srv.setupLink(employee)); err != nil {
		srv.log(ctx).Warn("Failed to send welcome mail", slog.Any("error", err), slog.String("email", employee.Email))
	}

	srv.log(ctx).Info("Employee created", slog.Any("employee_id", employee.ID), slog.String("email", employee.Email))

	return &usecase.EmployeeOutput{Employee: employee}, nil
}

// Get retrieves one staff record by ID.
func (srv *employeeService) Get(ctx context.Context, id uuid.UUID) (*usecase.EmployeeOutput, error) {
	employee, err := srv.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	return &usecase.EmployeeOutput{Employee: employee}, nil
}

// GetSelf retrieves the staff record belonging to the authenticated identity.
func (srv *employeeService) GetSelf(ctx context.Context, identity *entity.Identity) (*usecase.EmployeeOutput, error) {
	if !identity.IsEmployee() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "identity is not an employee")
	}

	employeeID, err := uuid.Parse(identity.UID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "malformed employee id in token")
	}

	return srv.Get(ctx, employeeID)
}

// List retrieves all staff records.
func (srv *employeeService) List(ctx context.Context) (*usecase.EmployeeListOutput, error) {
	employees, err := srv.employees.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return &usecase.EmployeeListOutput{Employees: employees}, nil
}

// Update applies a partial update to a staff record; nil fields keep their
// current value.
func (srv *employeeService) Update(ctx context.Context, input usecase.UpdateEmployeeInput) (*usecase.EmployeeOutput, error) {
	srv.log(ctx).Info("Updating employee", slog.Any("employee_id", input.ID))

	employee, err := srv.employees.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.JobTitle != nil {
		employee.JobTitle = *input.JobTitle
	}
	if input.PhoneNumber != nil {
		employee.PhoneNumber = *input.PhoneNumber
	}
	if input.Status != nil {
		status := entity.EmployeeStatus(*input.Status)
		if !status.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown employee status")
		}
		employee.Status = status
	}

	employee.UpdatedAt = time.Now()

	if err := srv.employees.Update(ctx, employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNotFound):
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		case errors.Is(err, repository.ErrEmployeeExists):
			return nil, errors.Wrap(domainerrors.ErrEmployeeExists, "email already registered")
		}

		srv.log(ctx).Error("Failed to update employee", slog.Any("error", err), slog.Any("employee_id", input.ID))

		return nil, errors.Wrap(err, "failed to update employee")
	}

	return &usecase.EmployeeOutput{Employee: employee}, nil
}

// Delete removes a staff record.
func (srv *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting employee", slog.Any("employee_id", id))

	if err := srv.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		return errors.Wrap(err, "failed to delete employee")
	}

	return nil
}

// SetPassword replaces the temporary password with the employee's chosen one.
func (srv *employeeService) SetPassword(ctx context.Context, input usecase.SetPasswordInput) error {
	srv.log(ctx).Info("Setting employee password", slog.Any("employee_id", input.ID))

	if len(input.NewPassword) < minPasswordLength {
		return errors.Wrap(domainerrors.ErrWeakPassword, "password below minimum length")
	}

	employee, err := srv.employees.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		return errors.Wrap(err, "failed to find employee")
	}

	if input.Email != "" && employee.Email != input.Email {
		return errors.Wrap(domainerrors.ErrEmployeeNotFound, "email does not match record")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	employee.PasswordHash = passwordHash
	employee.PasswordSet = true
	employee.UpdatedAt = time.Now()

	if err := srv.employees.Update(ctx, employee); err != nil {
		srv.log(ctx).Error("Failed to set employee password", slog.Any("error", err), slog.Any("employee_id", input.ID))

		return errors.Wrap(err, "failed to update employee")
	}

	return nil
}
