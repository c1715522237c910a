package http

import (
	"fmt"
	"strconv"
	"strings"

	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/input"
	"whatsapp-feedback-bot/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go/twiml"
)

// WhatsAppWebhookRequest struct - HTTP request DTO for the Twilio webhook form
type WhatsAppWebhookRequest struct {
	From      string `validate:"required"`
	Body      string
	MediaURLs []string
}

// WhatsAppWebhookHandler struct - Primary/Driving adapter for the Twilio
// WhatsApp webhook
type WhatsAppWebhookHandler struct {
	service   input.ReviewBotService
	validator validator.Validator
}

// NewWhatsAppWebhookHandler func - Creates new WhatsApp webhook handler
func NewWhatsAppWebhookHandler(service input.ReviewBotService) *WhatsAppWebhookHandler {
	return &WhatsAppWebhookHandler{
		service:   service,
		validator: validator.New(),
	}
}

// HandleWebhook func - Handles incoming Twilio webhook requests. Twilio
// posts an urlencoded form and expects a TwiML document back; the single
// <Message> verb in it is the bot's one reply for this inbound event.
func (h *WhatsAppWebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	request, err := h.parseForm(c)
	if err != nil {
		logrus.Errorf("Failed to parse webhook form: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("invalid request")
	}

	if err := h.validator.ValidateStruct(request); err != nil {
		logrus.Errorf("Invalid webhook request: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("invalid request")
	}

	from, err := domain.ValidatePhoneNumber(request.From)
	if err != nil {
		logrus.Errorf("Invalid sender number %q: %v", request.From, err)
		return c.Status(fiber.StatusBadRequest).SendString("invalid sender")
	}

	logrus.Infof("Received WhatsApp message: from=%s media=%d", from, len(request.MediaURLs))

	reply := h.service.HandleIncomingMessage(from, request.Body, request.MediaURLs)

	doc, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: reply},
	})
	if err != nil {
		logrus.Errorf("Failed to render TwiML response: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Status(fiber.StatusOK).SendString(doc)
}

// parseForm extracts the Twilio form fields. Media URLs arrive as
// MediaUrl0..MediaUrl{NumMedia-1} and keep their original order.
func (h *WhatsAppWebhookHandler) parseForm(c *fiber.Ctx) (WhatsAppWebhookRequest, error) {
	request := WhatsAppWebhookRequest{
		From: strings.TrimPrefix(c.FormValue("From"), "whatsapp:"),
		Body: c.FormValue("Body"),
	}

	numMediaValue := c.FormValue("NumMedia", "0")
	numMedia, err := strconv.Atoi(numMediaValue)
	if err != nil {
		return request, fmt.Errorf("invalid NumMedia %q: %w", numMediaValue, err)
	}

	for i := 0; i < numMedia; i++ {
		if url := c.FormValue(fmt.Sprintf("MediaUrl%d", i)); url != "" {
			request.MediaURLs = append(request.MediaURLs, url)
		}
	}

	return request, nil
}
