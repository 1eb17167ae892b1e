package notification

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"staffhub/config"
)

const codeMailSubject = "StaffHub - Your Login OTP"

const codeMailBody = `<p>Hello %s,</p>
<p>Your One-Time Password (OTP) for logging into StaffHub is:</p>
<p><strong>%s</strong></p>
<p>This OTP is valid for 5 minutes. Please do not share it with anyone.</p>
<p>If you did not request this, please ignore this email.</p>
<p>Best regards,</p>
<p>The StaffHub Team</p>`

const welcomeMailSubject = "Welcome to StaffHub - Account Setup"

const welcomeMailBody = `<p>Hello %s,</p>
<p>Welcome to StaffHub!</p>
<p>Your temporary login credentials are:</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Temporary Password:</strong> %s</p>
<p>Please click on the link below to set up your permanent password and access your account:</p>
<p><a href="%s">Set Up Your Account</a></p>
<p>If you have any questions, please contact your manager.</p>
<p>Best regards,</p>
<p>The StaffHub Team</p>`

// SMTPMailer sends email over an authenticated SMTP connection.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer is the constructor for SMTPMailer.
func NewSMTPMailer(cfg *config.SMTPConfig) (*SMTPMailer, error) {
	if cfg == nil {
		return nil, errors.New("live delivery selected but smtp is not configured")
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// SendCode delivers a login code email.
func (m *SMTPMailer) SendCode(ctx context.Context, email, name, code string) error {
	if name == "" {
		name = "Employee"
	}
	body := fmt.Sprintf(codeMailBody, name, code)

	return m.send(ctx, email, codeMailSubject, body)
}

// SendWelcome delivers the onboarding email with temporary credentials.
func (m *SMTPMailer) SendWelcome(ctx context.Context, email, name, tempPassword, setupLink string) error {
	body := fmt.Sprintf(welcomeMailBody, name, email, tempPassword, setupLink)

	return m.send(ctx, email, welcomeMailSubject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
