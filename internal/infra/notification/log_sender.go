package notification

import (
	"context"
	"log/slog"

	"staffhub/internal/domain/service"
)

// logSender writes codes to the service log instead of sending anything.
// Development only: it prints secrets.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.CodeSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendOwnerCode(_ context.Context, phoneNumber, code string) error {
	s.logger.Info("owner login code",
		slog.String("phoneNumber", phoneNumber),
		slog.String("code", code),
	)

	return nil
}

func (s *logSender) SendEmployeeCode(_ context.Context, email, _, code string) error {
	s.logger.Info("employee login code",
		slog.String("email", email),
		slog.String("code", code),
	)

	return nil
}

func (s *logSender) SendWelcome(_ context.Context, email, _, tempPassword, setupLink string) error {
	s.logger.Info("employee welcome mail",
		slog.String("email", email),
		slog.String("tempPassword", tempPassword),
		slog.String("setupLink", setupLink),
	)

	return nil
}
