package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type employeeServiceMocks struct {
	employees *mockEmployeeRepository
	hasher    *mockPasswordHasher
	sender    *mockCodeSender
}

func newEmployeeServiceForTest(t *testing.T) (usecase.EmployeeUsecase, *employeeServiceMocks) {
	t.Helper()

	mocks := &employeeServiceMocks{
		employees: &mockEmployeeRepository{},
		hasher:    &mockPasswordHasher{},
		sender:    &mockCodeSender{},
	}

	cfg := &config.Config{}
	cfg.Delivery.SetupBaseURL = "http://localhost:3000/employee-setup"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEmployeeService(mocks.employees, mocks.hasher, mocks.sender, cfg, logger)

	return service, mocks
}

func TestEmployeeService_Create_Success(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	mocks.hasher.On("Hash", mock.AnythingOfType("string")).Return("$2a$10$hash", nil)

	var created *entity.Employee
	mocks.employees.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Employee)
		}).
		Return(nil)

	var sentPassword, sentLink string
	mocks.sender.On("SendWelcome", ctx, "alex@example.com", "Alex",
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			sentPassword = args.String(3)
			sentLink = args.String(4)
		}).
		Return(nil)

	output, err := service.Create(ctx, usecase.CreateEmployeeInput{
		Name:        "Alex",
		Email:       "alex@example.com",
		JobTitle:    "cashier",
		PhoneNumber: "+886912345678",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.EmployeeActive, created.Status)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.False(t, created.PasswordSet)
	assert.Len(t, sentPassword, tempPasswordLength)
	assert.Contains(t, sentLink, "http://localhost:3000/employee-setup?")
	assert.Contains(t, sentLink, "uid="+created.ID.String())
	assert.Contains(t, sentLink, "email=alex%40example.com")
	assert.Equal(t, created, output.Employee)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	mocks.hasher.On("Hash", mock.AnythingOfType("string")).Return("$2a$10$hash", nil)
	mocks.employees.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).
		Return(repository.ErrEmployeeExists)

	_, err := service.Create(ctx, usecase.CreateEmployeeInput{
		Name:  "Alex",
		Email: "alex@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeExists)
	mocks.sender.AssertNotCalled(t, "SendWelcome",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_Create_MailFailureStillCreates(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	mocks.hasher.On("Hash", mock.AnythingOfType("string")).Return("$2a$10$hash", nil)
	mocks.employees.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)
	mocks.sender.On("SendWelcome", ctx, "alex@example.com", "Alex",
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))

	output, err := service.Create(ctx, usecase.CreateEmployeeInput{
		Name:  "Alex",
		Email: "alex@example.com",
	})

	require.NoError(t, err)
	assert.NotNil(t, output.Employee)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	mocks.employees.On("FindByID", ctx, id).Return(nil, repository.ErrEmployeeNotFound)

	_, err := service.Get(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_GetSelf_Success(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, Email: "alex@example.com"}
	mocks.employees.On("FindByID", ctx, employeeID).Return(employee, nil)

	output, err := service.GetSelf(ctx, &entity.Identity{
		Role: entity.RoleEmployee,
		UID:  employeeID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, employee, output.Employee)
}

func TestEmployeeService_GetSelf_OwnerForbidden(t *testing.T) {
	service, _ := newEmployeeServiceForTest(t)
	ctx := context.Background()

	_, err := service.GetSelf(ctx, &entity.Identity{Role: entity.RoleOwner})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEmployeeService_List_Success(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	employees := []*entity.Employee{
		{ID: uuid.New(), Name: "Alex"},
		{ID: uuid.New(), Name: "Briana"},
	}
	mocks.employees.On("List", ctx).Return(employees, nil)

	output, err := service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, output.Employees, 2)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	existing := &entity.Employee{
		ID:       id,
		Name:     "Alex",
		Email:    "alex@example.com",
		JobTitle: "cashier",
		Status:   entity.EmployeeActive,
	}
	mocks.employees.On("FindByID", ctx, id).Return(existing, nil)
	mocks.employees.On("Update", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	jobTitle := "manager"
	status := "inactive"
	output, err := service.Update(ctx, usecase.UpdateEmployeeInput{
		ID:       id,
		JobTitle: &jobTitle,
		Status:   &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "manager", output.Employee.JobTitle)
	assert.Equal(t, entity.EmployeeInactive, output.Employee.Status)
	assert.Equal(t, "Alex", output.Employee.Name)
	assert.Equal(t, "alex@example.com", output.Employee.Email)
}

func TestEmployeeService_Update_UnknownStatus(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	mocks.employees.On("FindByID", ctx, id).Return(&entity.Employee{ID: id}, nil)

	status := "fired"
	_, err := service.Update(ctx, usecase.UpdateEmployeeInput{ID: id, Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	mocks.employees.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	mocks.employees.On("Delete", ctx, id).Return(repository.ErrEmployeeNotFound)

	err := service.Delete(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_SetPassword_Success(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	employee := &entity.Employee{ID: id, Email: "alex@example.com", PasswordHash: "$2a$10$temp"}
	mocks.employees.On("FindByID", ctx, id).Return(employee, nil)
	mocks.hasher.On("Hash", "chosen-password").Return("$2a$10$chosen", nil)

	var updated *entity.Employee
	mocks.employees.On("Update", ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Employee)
		}).
		Return(nil)

	err := service.SetPassword(ctx, usecase.SetPasswordInput{
		ID:          id,
		Email:       "alex@example.com",
		NewPassword: "chosen-password",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "$2a$10$chosen", updated.PasswordHash)
	assert.True(t, updated.PasswordSet)
}

func TestEmployeeService_SetPassword_TooShort(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	err := service.SetPassword(ctx, usecase.SetPasswordInput{
		ID:          uuid.New(),
		NewPassword: "abc",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
	mocks.employees.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestEmployeeService_SetPassword_EmailMismatch(t *testing.T) {
	service, mocks := newEmployeeServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	mocks.employees.On("FindByID", ctx, id).Return(&entity.Employee{ID: id, Email: "alex@example.com"}, nil)

	err := service.SetPassword(ctx, usecase.SetPasswordInput{
		ID:          id,
		Email:       "other@example.com",
		NewPassword: "chosen-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
	mocks.employees.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGenerateTempPassword_Properties(t *testing.T) {
	seen := map[string]bool{}
	for range 16 {
		password, err := generateTempPassword()
		require.NoError(t, err)
		assert.Len(t, password, tempPasswordLength)
		for _, r := range password {
			assert.Contains(t, tempPasswordCharset, string(r))
		}
		seen[password] = true
	}

	assert.Greater(t, len(seen), 1)
}
