package notification

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"staffhub/config"
)

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender is the constructor for TwilioSender.
func NewTwilioSender(cfg *config.TwilioConfig) (*TwilioSender, error) {
	if cfg == nil {
		return nil, errors.New("live delivery selected but twilio is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &TwilioSender{client: client, from: cfg.From}, nil
}

// SendCode delivers a login code SMS.
func (s *TwilioSender) SendCode(phoneNumber, code string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Your login OTP is: %s", code))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return errors.Wrap(err, "failed to send sms")
	}

	return nil
}
