package output

import "whatsapp-feedback-bot/internal/domain"

// ReviewHistoryRepository interface - Output port
// Records terminal submission attempts (success or failure) for later
// inspection. Writes are best-effort from the caller's point of view.
type ReviewHistoryRepository interface {
	// Save persists one submission attempt record
	Save(record domain.ReviewRecord) error
}
