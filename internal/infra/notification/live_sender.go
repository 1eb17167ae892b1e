package notification

import "context"

// liveSender routes owner codes to SMS and employee mail to SMTP.
type liveSender struct {
	mailer *SMTPMailer
	sms    *TwilioSender
}

func (s *liveSender) SendOwnerCode(_ context.Context, phoneNumber, code string) error {
	return s.sms.SendCode(phoneNumber, code)
}

func (s *liveSender) SendEmployeeCode(ctx context.Context, email, name, code string) error {
	return s.mailer.SendCode(ctx, email, name, code)
}

func (s *liveSender) SendWelcome(ctx context.Context, email, name, tempPassword, setupLink string) error {
	return s.mailer.SendWelcome(ctx, email, name, tempPassword, setupLink)
}
