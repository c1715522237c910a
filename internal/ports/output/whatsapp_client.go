package output

// WhatsAppClient interface - Output port
// Defines what the application needs from the WhatsApp messaging platform
type WhatsAppClient interface {
	// SendMessage sends a text message to a user's WhatsApp number
	SendMessage(to, body string) error
}
