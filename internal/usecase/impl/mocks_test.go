package impl

import (
	"context"

	"staffhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify doubles for the collaborator interfaces.

type mockChallengeRepository struct {
	mock.Mock
}

func (m *mockChallengeRepository) Save(ctx context.Context, challenge *entity.Challenge) error {
	args := m.Called(ctx, challenge)

	return args.Error(0)
}

func (m *mockChallengeRepository) Find(ctx context.Context, subject string) (*entity.Challenge, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Challenge), args.Error(1)
}

func (m *mockChallengeRepository) Delete(ctx context.Context, subject string) error {
	args := m.Called(ctx, subject)

	return args.Error(0)
}

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	args := m.Called(ctx, employee)

	return args.Error(0)
}

func (m *mockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	args := m.Called(ctx, employee)

	return args.Error(0)
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(identity *entity.Identity) (string, error) {
	args := m.Called(identity)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (*entity.Identity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

type mockCodeGenerator struct {
	mock.Mock
}

func (m *mockCodeGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

type mockCodeSender struct {
	mock.Mock
}

func (m *mockCodeSender) SendOwnerCode(ctx context.Context, phoneNumber, code string) error {
	args := m.Called(ctx, phoneNumber, code)

	return args.Error(0)
}

func (m *mockCodeSender) SendEmployeeCode(ctx context.Context, email, name, code string) error {
	args := m.Called(ctx, email, name, code)

	return args.Error(0)
}

func (m *mockCodeSender) SendWelcome(ctx context.Context, email, name, tempPassword, setupLink string) error {
	args := m.Called(ctx, email, name, tempPassword, setupLink)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}
