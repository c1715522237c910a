package twilio

import (
	"fmt"
	"strings"

	"whatsapp-feedback-bot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Compile-time check to ensure ClientAdapter implements the output port
var _ output.WhatsAppClient = (*ClientAdapter)(nil)

// ClientAdapter struct - Output adapter for the Twilio WhatsApp API
type ClientAdapter struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewClientAdapter func - Creates new Twilio WhatsApp client adapter.
// fromNumber is the bot's WhatsApp-enabled Twilio number.
func NewClientAdapter(accountSID, authToken, fromNumber string) (*ClientAdapter, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("twilio credentials are not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &ClientAdapter{
		client:     client,
		fromNumber: fromNumber,
	}, nil
}

// SendMessage - Sends a WhatsApp text message to a user
func (a *ClientAdapter) SendMessage(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(whatsappAddress(a.fromNumber))
	params.SetTo(whatsappAddress(to))
	params.SetBody(body)

	if _, err := a.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	logrus.Infof("Successfully sent WhatsApp message to: %s", to)
	return nil
}

// whatsappAddress prefixes a phone number with the channel scheme Twilio expects
func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
