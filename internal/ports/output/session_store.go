package output

import "whatsapp-feedback-bot/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for tracking per-user dialogue sessions.
// At most one session exists per user at a time; implementations must be
// thread-safe for concurrent access by distinct user IDs.
type SessionStore interface {
	// GetOrCreate returns the existing session for a user, or creates one
	// in the initial state if the user has none.
	// Returns an error only if there is a storage access failure.
	GetOrCreate(userID string) (*domain.ReviewSession, error)

	// Remove deletes a user's session. This operation is idempotent -
	// removing a non-existent session does not return an error.
	Remove(userID string) error
}
