package application

import (
	"context"

	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Failure reasons surfaced to the user, one per automation step
const (
	reasonSessionUnavailable = "no se pudo iniciar el navegador"
	reasonAuthentication     = "no se pudo iniciar sesión en Google"
	reasonPlaceNotFound      = "no se encontró el lugar"
	reasonCompose            = "no se pudo redactar la reseña"
	reasonSubmit             = "no se pudo publicar la reseña"
	reasonInternal           = "error interno durante el envío"
)

// SubmissionPipeline struct - Turns a completed session into a browser-driven
// review submission. Each call opens a fresh automation session so no browser
// state leaks between users, and the session is torn down exactly once on
// every path. Failed attempts are not retried: replaying half-finished UI
// interactions against a live third-party page is not safe.
type SubmissionPipeline struct {
	factory output.MapsAutomationFactory
	history output.ReviewHistoryRepository
}

// NewSubmissionPipeline func - Creates new submission pipeline.
// history may be nil when no durable record keeping is configured.
func NewSubmissionPipeline(factory output.MapsAutomationFactory, history output.ReviewHistoryRepository) *SubmissionPipeline {
	return &SubmissionPipeline{
		factory: factory,
		history: history,
	}
}

// Submit runs the full automation sequence for one completed session and
// returns a tri-state outcome. Unexpected faults from the driver are caught
// here and converted to a failure; they never reach the messaging boundary.
func (p *SubmissionPipeline) Submit(ctx context.Context, session *domain.ReviewSession) (outcome domain.SubmissionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Panic during submission for %s: %v", session.UserID, r)
			outcome = domain.SubmissionOutcome{Submitted: false, Reason: reasonInternal}
		}
		p.record(session, outcome)
	}()

	logrus.Infof("Starting review submission for %s: place=%q rating=%d photos=%d",
		session.UserID, session.PlaceName, session.Rating, len(session.PhotoRefs))

	outcome = p.run(ctx, session)

	if outcome.Submitted {
		logrus.Infof("Review for %q submitted successfully", session.PlaceName)
	} else {
		logrus.Errorf("Review submission for %q failed: %s", session.PlaceName, outcome.Reason)
	}
	return outcome
}

func (p *SubmissionPipeline) run(ctx context.Context, session *domain.ReviewSession) domain.SubmissionOutcome {
	driver, err := p.factory.NewSession(ctx)
	if err != nil {
		logrus.Errorf("Failed to open automation session: %v", err)
		return domain.SubmissionOutcome{Submitted: false, Reason: reasonSessionUnavailable}
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logrus.Errorf("Failed to close automation session: %v", err)
		}
	}()

	if err := driver.Authenticate(ctx); err != nil {
		logrus.Errorf("Authentication step failed: %v", err)
		return domain.SubmissionOutcome{Submitted: false, Reason: reasonAuthentication}
	}

	if err := driver.LocatePlace(ctx, session.PlaceName); err != nil {
		logrus.Errorf("Locate step failed for %q: %v", session.PlaceName, err)
		return domain.SubmissionOutcome{Submitted: false, Reason: reasonPlaceNotFound}
	}

	if err := driver.ComposeReview(ctx, session.Rating, session.ReviewText, session.PhotoRefs); err != nil {
		logrus.Errorf("Compose step failed: %v", err)
		return domain.SubmissionOutcome{Submitted: false, Reason: reasonCompose}
	}

	if err := driver.Submit(ctx); err != nil {
		logrus.Errorf("Submit step failed: %v", err)
		return domain.SubmissionOutcome{Submitted: false, Reason: reasonSubmit}
	}

	return domain.SubmissionOutcome{Submitted: true}
}

// record writes the attempt to the history repository. Best-effort: a
// storage error never changes the user-facing outcome.
func (p *SubmissionPipeline) record(session *domain.ReviewSession, outcome domain.SubmissionOutcome) {
	if p.history == nil {
		return
	}
	if err := p.history.Save(domain.NewReviewRecord(session, outcome)); err != nil {
		logrus.Errorf("Failed to record submission attempt for %s: %v", session.UserID, err)
	}
}
