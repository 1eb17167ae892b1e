// Package notification implements the out-of-band delivery of login codes
// and onboarding mail.
package notification

import (
	"log/slog"

	"github.com/pkg/errors"

	"staffhub/config"
	"staffhub/internal/domain/service"
)

// New builds the CodeSender selected by configuration: "log" writes the
// codes to the service log (development), "live" sends real SMS and email.
func New(cfg *config.Config, logger *slog.Logger) (service.CodeSender, error) {
	switch cfg.Delivery.Provider {
	case config.DeliveryLog:
		return NewLogSender(logger), nil
	case config.DeliveryLive:
		mailer, err := NewSMTPMailer(cfg.Delivery.SMTP)
		if err != nil {
			return nil, err
		}
		sms, err := NewTwilioSender(cfg.Delivery.Twilio)
		if err != nil {
			return nil, err
		}

		return &liveSender{mailer: mailer, sms: sms}, nil
	default:
		return nil, errors.Errorf("unknown delivery provider: %s", cfg.Delivery.Provider)
	}
}
