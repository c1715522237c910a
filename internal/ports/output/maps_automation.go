package output

import "context"

// MapsAutomation interface - Output port
// Defines one scoped browser-automation session used for a single review
// submission. Calls must be made in order: Authenticate, LocatePlace,
// ComposeReview, Submit. Each call bounds its own wait internally and
// returns an error instead of hanging; none of them retries on its own.
type MapsAutomation interface {
	// Authenticate signs in to the map service with the configured account
	Authenticate(ctx context.Context) error

	// LocatePlace searches for the place by name and opens its page
	LocatePlace(ctx context.Context, name string) error

	// ComposeReview opens the review surface, selects the star rating,
	// enters the text and attaches photos. Photo attachment is best-effort:
	// a single failed attachment is logged and skipped.
	ComposeReview(ctx context.Context, rating int, text string, photoRefs []string) error

	// Submit posts the composed review
	Submit(ctx context.Context) error

	// Close releases the browser context. Always callable and idempotent.
	Close() error
}

// MapsAutomationFactory interface - Output port
// Opens a fresh automation session per submission so no browser state is
// shared across users.
type MapsAutomationFactory interface {
	NewSession(ctx context.Context) (MapsAutomation, error)
}
