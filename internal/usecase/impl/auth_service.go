// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
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

// authService implements the AuthUsecase interface.
type authService struct {
	challenges repository.ChallengeRepository
	employees  repository.EmployeeRepository
	tokens     service.TokenService
	codes      service.CodeGenerator
	sender     service.CodeSender
	hasher     service.PasswordHasher
	ttl        time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	challenges repository.ChallengeRepository,
	employees repository.EmployeeRepository,
	tokens service.TokenService,
	codes service.CodeGenerator,
	sender service.CodeSender,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		challenges: challenges,
		employees:  employees,
		tokens:     tokens,
		codes:      codes,
		sender:     sender,
		hasher:     hasher,
		ttl:        cfg.Challenge.TTL,
		logger:     logger,
		now:        time.Now,
	}
}

// log returns a request-scoped logger if available, falling back to the service logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// issueChallenge generates a fresh code for the subject and stores it,
// replacing any previous challenge so only the latest code is valid.
func (srv *authService) issueChallenge(ctx context.Context, subject string, flow entity.FlowType, ownerUID string) (*entity.Challenge, error) {
	code, err := srv.codes.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access code")
	}

	createdAt := srv.now()
	challenge := &entity.Challenge{
		Subject:   subject,
		Code:      code,
		FlowType:  flow,
		OwnerUID:  ownerUID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(srv.ttl),
	}

	if err := srv.challenges.Save(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to store challenge")
	}

	return challenge, nil
}

// consumeChallenge loads the live challenge for the subject and validates
// the submitted code against it. A matching code deletes the challenge
// before returning so it can never validate twice; a mismatch leaves it
// in place for retry until expiry.
func (srv *authService) consumeChallenge(ctx context.Context, subject, code string, flow entity.FlowType) (*entity.Challenge, error) {
	challenge, err := srv.challenges.Find(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChallengeNotFound, "no active challenge")
		}

		return nil, errors.Wrap(err, "failed to load challenge")
	}

	if challenge.FlowType != flow {
		return nil, errors.Wrap(domainerrors.ErrChallengeNotFound, "challenge belongs to another flow")
	}

	if challenge.ExpiredAt(srv.now()) {
		if err := srv.challenges.Delete(ctx, subject); err != nil {
			srv.log(ctx).Warn("Failed to delete expired challenge", slog.Any("error", err), slog.String("subject", subject))
		}

		return nil, errors.Wrap(domainerrors.ErrChallengeExpired, "challenge past deadline")
	}

	if !challenge.Matches(code) {
		return nil, errors.Wrap(domainerrors.ErrInvalidAccessCode, "submitted code does not match")
	}

	if err := srv.challenges.Delete(ctx, subject); err != nil {
		return nil, errors.Wrap(err, "failed to invalidate challenge")
	}

	return challenge, nil
}

// RequestOwnerCode issues a login challenge for the owner phone flow and
// delivers the code over SMS.
func (srv *authService) RequestOwnerCode(ctx context.Context, input *usecase.RequestOwnerCodeInput) error {
	srv.log(ctx).Info("Issuing owner access code", slog.String("phone_number", input.PhoneNumber))

	challenge, err := srv.issueChallenge(ctx, input.PhoneNumber, entity.FlowOwnerPhone, "")
	if err != nil {
		srv.log(ctx).Error("Failed to issue owner access code", slog.Any("error", err), slog.String("phone_number", input.PhoneNumber))

		return err
	}

	// Delivery failures do not roll back the challenge; the code stays
	// valid and the caller can request a fresh one at any time.
	if err := srv.sender.SendOwnerCode(ctx, input.PhoneNumber, challenge.Code); err != nil {
		srv.log(ctx).Warn("Failed to deliver owner access code", slog.Any("error", err), slog.String("phone_number", input.PhoneNumber))
	}

	return nil
}

// ValidateOwnerCode checks the submitted code against the owner phone
// challenge and issues a session token on success.
func (srv *authService) ValidateOwnerCode(ctx context.Context, input *usecase.ValidateOwnerCodeInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Validating owner access code", slog.String("phone_number", input.PhoneNumber))

	if _, err := srv.consumeChallenge(ctx, input.PhoneNumber, input.AccessCode, entity.FlowOwnerPhone); err != nil {
		srv.log(ctx).Warn("Owner access code rejected", slog.Any("error", err), slog.String("phone_number", input.PhoneNumber))

		return nil, err
	}

	token, err := srv.tokens.Issue(&entity.Identity{
		Role:        entity.RoleOwner,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue owner session token", slog.Any("error", err), slog.String("phone_number", input.PhoneNumber))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Owner logged in", slog.String("phone_number", input.PhoneNumber))

	return &usecase.TokenOutput{Token: token}, nil
}

// RequestEmployeeCode issues a login challenge for a registered employee
// and delivers the code by email.
func (srv *authService) RequestEmployeeCode(ctx context.Context, input *usecase.RequestEmployeeCodeInput) error {
	srv.log(ctx).Info("Issuing employee access code", slog.String("email", input.Email))

	employee, err := srv.employees.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "no employee registered for email")
		}

		return errors.Wrap(err, "failed to find employee")
	}

	challenge, err := srv.issueChallenge(ctx, input.Email, entity.FlowEmployeeEmail, employee.ID.String())
	if err != nil {
		srv.log(ctx).Error("Failed to issue employee access code", slog.Any("error", err), slog.String("email", input.Email))

		return err
	}

	if err := srv.sender.SendEmployeeCode(ctx, employee.Email, employee.Name, challenge.Code); err != nil {
		srv.log(ctx).Warn("Failed to deliver employee access code", slog.Any("error", err), slog.String("email", input.Email))
	}

	return nil
}

// ValidateEmployeeCode checks the submitted code against the employee
// email challenge and issues a session token on success.
func (srv *authService) ValidateEmployeeCode(ctx context.Context, input *usecase.ValidateEmployeeCodeInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Validating employee access code", slog.String("email", input.Email))

	challenge, err := srv.consumeChallenge(ctx, input.Email, input.AccessCode, entity.FlowEmployeeEmail)
	if err != nil {
		srv.log(ctx).Warn("Employee access code rejected", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	token, err := srv.tokens.Issue(&entity.Identity{
		Role:  entity.RoleEmployee,
		UID:   challenge.OwnerUID,
		Email: input.Email,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue employee session token", slog.Any("error", err), slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Employee logged in", slog.String("email", input.Email))

	return &usecase.TokenOutput{Token: token}, nil
}

// LoginWithPassword authenticates an employee by email and password and
// issues a session token on success.
func (srv *authService) LoginWithPassword(ctx context.Context, input *usecase.PasswordLoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Employee password login", slog.String("email", input.Email))

	employee, err := srv.employees.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			// Same failure as a wrong password so the response does not
			// reveal which emails are registered.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no employee registered for email")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	if employee.PasswordHash == "" || !srv.hasher.Check(input.Password, employee.PasswordHash) {
		srv.log(ctx).Warn("Employee password rejected", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokens.Issue(&entity.Identity{
		Role:  entity.RoleEmployee,
		UID:   employee.ID.String(),
		Email: employee.Email,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue employee session token", slog.Any("error", err), slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Employee logged in with password", slog.String("email", input.Email))

	return &usecase.TokenOutput{Token: token}, nil
}

// VerifyToken validates a session token and returns the identity it
// carries. Employee identities are checked against the directory so a
// token issued to a since-deleted employee stops working.
func (srv *authService) VerifyToken(ctx context.Context, input *usecase.VerifyTokenInput) (*usecase.VerifyTokenOutput, error) {
	identity, err := srv.tokens.Verify(input.Token)
	if err != nil {
		return nil, err
	}

	if identity.IsEmployee() {
		employeeID, err := uuid.Parse(identity.UID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "malformed employee id in token")
		}

		if _, err := srv.employees.FindByID(ctx, employeeID); err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee no longer registered")
			}

			return nil, errors.Wrap(err, "failed to find employee")
		}
	}

	return &usecase.VerifyTokenOutput{Identity: identity}, nil
}
