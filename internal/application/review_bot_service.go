package application

import (
	"context"
	"strings"
	"sync"

	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Free-text command tokens, matched case-insensitively after trimming.
// Membership in these sets is the only command matching the bot does.
var (
	noPhotosTokens = map[string]struct{}{
		"sin fotos": {},
		"no":        {},
		"nada":      {},
	}

	affirmativeTokens = map[string]struct{}{
		"sí":        {},
		"si":        {},
		"yes":       {},
		"ok":        {},
		"confirmar": {},
	}

	negativeTokens = map[string]struct{}{
		"no":       {},
		"cancelar": {},
		"cancel":   {},
	}
)

func normalizeToken(body string) string {
	return strings.ToLower(strings.TrimSpace(body))
}

func matchesToken(body string, tokens map[string]struct{}) bool {
	_, ok := tokens[normalizeToken(body)]
	return ok
}

// ReviewBotService struct - Application service driving the review-authoring
// dialogue. One inbound message per user is processed at a time; distinct
// users proceed concurrently.
type ReviewBotService struct {
	sessionStore output.SessionStore
	whatsapp     output.WhatsAppClient
	pipeline     *SubmissionPipeline

	// Allow-list of normalized phone numbers. Empty means unrestricted.
	allowedNumbers map[string]struct{}

	// Per-user locks so no two transitions for one user run concurrently
	userLocks sync.Map
}

// NewReviewBotService func - Creates new review bot service
func NewReviewBotService(
	sessionStore output.SessionStore,
	whatsapp output.WhatsAppClient,
	pipeline *SubmissionPipeline,
	allowedNumbers []string,
) *ReviewBotService {
	allowed := make(map[string]struct{}, len(allowedNumbers))
	for _, number := range allowedNumbers {
		if number == "" {
			continue
		}
		allowed[number] = struct{}{}
	}

	return &ReviewBotService{
		sessionStore:   sessionStore,
		whatsapp:       whatsapp,
		pipeline:       pipeline,
		allowedNumbers: allowed,
	}
}

// HandleIncomingMessage func - Use case: process one inbound message and
// produce exactly one reply body. Faults never escape this method.
func (s *ReviewBotService) HandleIncomingMessage(from, body string, mediaURLs []string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Panic while handling message from %s: %v", from, r)
			reply = internalErrorMessage
		}
	}()

	// Authorization gate runs before any session mutation
	if len(s.allowedNumbers) > 0 {
		if _, ok := s.allowedNumbers[from]; !ok {
			logrus.Warnf("Rejected message from unauthorized number: %s", from)
			return notAuthorizedMessage
		}
	}

	lock := s.lockFor(from)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessionStore.GetOrCreate(from)
	if err != nil {
		logrus.Errorf("Failed to load session for %s: %v", from, err)
		return internalErrorMessage
	}

	switch session.State {
	case domain.SessionStateNone:
		reply = s.handleWelcome(session)
	case domain.SessionStateAwaitingPlace:
		reply = s.handlePlaceInput(session, body)
	case domain.SessionStateAwaitingRating:
		reply = s.handleRatingInput(session, body)
	case domain.SessionStateAwaitingText:
		reply = s.handleTextInput(session, body)
	case domain.SessionStateAwaitingPhotos:
		reply = s.handlePhotosInput(session, body, mediaURLs)
	case domain.SessionStateAwaitingConfirmation:
		reply = s.handleConfirmation(session, body)
	default:
		logrus.Errorf("Session for %s in unknown state %q, resetting", from, session.State)
		_ = s.sessionStore.Remove(from)
		reply = internalErrorMessage
	}

	s.push(from, reply)
	return reply
}

// lockFor returns the mutex serializing transitions for one user
func (s *ReviewBotService) lockFor(userID string) *sync.Mutex {
	lock, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// push delivers the prompt over the messaging platform. The webhook reply
// carries the same text, so delivery failures are logged and tolerated.
func (s *ReviewBotService) push(to, body string) {
	if err := s.whatsapp.SendMessage(to, body); err != nil {
		logrus.Errorf("Failed to send WhatsApp message to %s: %v", to, err)
	}
}

// handleWelcome - any first message starts the dialogue
func (s *ReviewBotService) handleWelcome(session *domain.ReviewSession) string {
	session.State = domain.SessionStateAwaitingPlace
	return welcomeMessage
}

// handlePlaceInput - stores the place name. The transition only requires
// non-empty text; full place validation is the map service's job.
func (s *ReviewBotService) handlePlaceInput(session *domain.ReviewSession, body string) string {
	placeName := strings.TrimSpace(body)
	if placeName == "" {
		return placeRepromptMessage
	}

	session.PlaceName = placeName
	session.State = domain.SessionStateAwaitingRating
	return ratingPromptMessage(placeName)
}

// handleRatingInput - validates and stores the 1-5 rating
func (s *ReviewBotService) handleRatingInput(session *domain.ReviewSession, body string) string {
	rating, err := domain.ValidateRating(strings.TrimSpace(body))
	if err != nil {
		return ratingErrorMessage
	}

	session.Rating = rating
	session.State = domain.SessionStateAwaitingText
	return textPromptMessage(rating)
}

// handleTextInput - validates and stores the review text
func (s *ReviewBotService) handleTextInput(session *domain.ReviewSession, body string) string {
	text, err := domain.ValidateReviewText(body)
	if err != nil {
		return reviewTextErrorMessage(err)
	}

	session.ReviewText = text
	session.State = domain.SessionStateAwaitingPhotos
	return photosPromptMessage
}

// handlePhotosInput - collects photo references or accepts an opt-out token,
// then shows the confirmation summary
func (s *ReviewBotService) handlePhotosInput(session *domain.ReviewSession, body string, mediaURLs []string) string {
	switch {
	case matchesToken(body, noPhotosTokens):
		// proceed without photos
	case len(mediaURLs) > 0:
		session.AddPhotoRefs(mediaURLs)
	default:
		return photosRepromptMessage
	}

	session.State = domain.SessionStateAwaitingConfirmation
	return confirmationSummaryMessage(session)
}

// handleConfirmation - terminal step: submit, cancel, or re-prompt
func (s *ReviewBotService) handleConfirmation(session *domain.ReviewSession, body string) string {
	switch {
	case matchesToken(body, affirmativeTokens):
		return s.submit(session)
	case matchesToken(body, negativeTokens):
		if err := s.sessionStore.Remove(session.UserID); err != nil {
			logrus.Errorf("Failed to remove session for %s: %v", session.UserID, err)
		}
		return cancelMessage
	default:
		return confirmationRepromptMessage
	}
}

// submit hands the completed session to the pipeline and folds the outcome
// into a reply. The session is always cleared so the user restarts cleanly.
func (s *ReviewBotService) submit(session *domain.ReviewSession) string {
	outcome := s.pipeline.Submit(context.Background(), session)

	if err := s.sessionStore.Remove(session.UserID); err != nil {
		logrus.Errorf("Failed to remove session for %s after submission: %v", session.UserID, err)
	}

	if outcome.Submitted {
		return submissionSuccessMessage(session.PlaceName)
	}
	return submissionFailureMessage(outcome.Reason)
}
