package input

// ReviewBotService interface - Input port (use case)
// The sole entry point the core exposes to the webhook boundary.
type ReviewBotService interface {
	// HandleIncomingMessage processes one inbound message for a user and
	// returns exactly one reply body. It never propagates a fault upward:
	// unexpected errors are logged and converted to a generic apology, and
	// a session is never left in a partially transitioned state.
	HandleIncomingMessage(from, body string, mediaURLs []string) string
}
