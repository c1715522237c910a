package memory

import (
	"sync"

	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/output"
)

// Compile-time check to ensure SessionStore implements the output port
var _ output.SessionStore = (*SessionStore)(nil)

// SessionStore struct - Output adapter for in-memory session storage.
// Uses sync.Map for thread-safe concurrent access by distinct user IDs.
// Sessions live for the process lifetime unless removed by a terminal
// dialogue transition; there is no expiry policy in this adapter.
type SessionStore struct {
	sessions sync.Map
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// GetOrCreate retrieves the session for a user, creating one in the initial
// state if none exists. Concurrent calls for the same user return the same
// session instance.
func (m *SessionStore) GetOrCreate(userID string) (*domain.ReviewSession, error) {
	value, _ := m.sessions.LoadOrStore(userID, domain.NewReviewSession(userID))

	session, ok := value.(*domain.ReviewSession)
	if !ok {
		// Malformed entry: replace it with a fresh session
		session = domain.NewReviewSession(userID)
		m.sessions.Store(userID, session)
	}

	return session, nil
}

// Remove deletes a user's session.
// This operation is idempotent - removing a non-existent session does not return an error.
func (m *SessionStore) Remove(userID string) error {
	m.sessions.Delete(userID)
	return nil
}
