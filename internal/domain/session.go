package domain

import "time"

// SessionState represents the current step of the review-authoring dialogue
type SessionState string

const (
	// SessionStateNone - no active dialogue yet
	SessionStateNone SessionState = ""
	// SessionStateAwaitingPlace - waiting for the place name
	SessionStateAwaitingPlace SessionState = "waiting_for_place"
	// SessionStateAwaitingRating - waiting for the 1-5 star rating
	SessionStateAwaitingRating SessionState = "waiting_for_rating"
	// SessionStateAwaitingText - waiting for the review text
	SessionStateAwaitingText SessionState = "waiting_for_text"
	// SessionStateAwaitingPhotos - waiting for photos or an opt-out token
	SessionStateAwaitingPhotos SessionState = "waiting_for_photos"
	// SessionStateAwaitingConfirmation - waiting for the final yes/no
	SessionStateAwaitingConfirmation SessionState = "confirming_submission"
)

// ReviewSession holds the per-user dialogue state accumulated across
// inbound messages. Fields fill strictly left to right: a later field is
// only set once every earlier one is, matching the state order above.
type ReviewSession struct {
	UserID     string       // normalized phone number
	State      SessionState // current dialogue step
	PlaceName  string
	Rating     int      // 1-5 once set, 0 while unset
	ReviewText string
	PhotoRefs  []string // opaque media references, append-only
	CreatedAt  time.Time
}

// NewReviewSession creates a fresh session in the initial state for a user
func NewReviewSession(userID string) *ReviewSession {
	return &ReviewSession{
		UserID:    userID,
		State:     SessionStateNone,
		PhotoRefs: make([]string, 0),
		CreatedAt: time.Now(),
	}
}

// AddPhotoRefs appends media references to the session. References are
// never mutated or reordered after being added.
func (s *ReviewSession) AddPhotoRefs(refs []string) {
	s.PhotoRefs = append(s.PhotoRefs, refs...)
}

// IsComplete reports whether every field required for submission is set
func (s *ReviewSession) IsComplete() bool {
	return s.PlaceName != "" && s.Rating >= 1 && s.Rating <= 5 && s.ReviewText != ""
}
