package application

import (
	"context"
	"errors"
	"testing"

	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/output"
)

func completedSession() *domain.ReviewSession {
	session := domain.NewReviewSession(testUser)
	session.State = domain.SessionStateAwaitingConfirmation
	session.PlaceName = "Café Luna"
	session.Rating = 4
	session.ReviewText = "Muy buen café y excelente atención."
	session.AddPhotoRefs([]string{"https://example.com/a.jpg"})
	return session
}

// TestSubmitRunsStepsInOrder tests the strict step sequence on success
func TestSubmitRunsStepsInOrder(t *testing.T) {
	automation := &MockAutomation{}
	pipeline := NewSubmissionPipeline(&MockAutomationFactory{Automation: automation}, nil)

	outcome := pipeline.Submit(context.Background(), completedSession())

	if !outcome.Submitted {
		t.Fatalf("expected success, got failure: %s", outcome.Reason)
	}
	want := []string{"authenticate", "locate", "compose", "submit"}
	if len(automation.Calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, automation.Calls)
	}
	for i, step := range want {
		if automation.Calls[i] != step {
			t.Errorf("call %d: expected %s, got %s", i, step, automation.Calls[i])
		}
	}
	if automation.CloseCalls != 1 {
		t.Errorf("expected exactly one Close, got %d", automation.CloseCalls)
	}
}

// TestSubmitStopsAtFirstFailure tests that a failing step aborts the attempt
// without running later steps, and teardown still happens
func TestSubmitStopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*MockAutomation)
		wantCalls []string
	}{
		{
			name: "authentication fails",
			configure: func(m *MockAutomation) {
				m.AuthenticateFunc = func(ctx context.Context) error { return errors.New("bad credentials") }
			},
			wantCalls: []string{"authenticate"},
		},
		{
			name: "place not found",
			configure: func(m *MockAutomation) {
				m.LocatePlaceFunc = func(ctx context.Context, name string) error { return errors.New("no results") }
			},
			wantCalls: []string{"authenticate", "locate"},
		},
		{
			name: "compose fails",
			configure: func(m *MockAutomation) {
				m.ComposeReviewFunc = func(ctx context.Context, rating int, text string, photoRefs []string) error {
					return errors.New("dialog missing")
				}
			},
			wantCalls: []string{"authenticate", "locate", "compose"},
		},
		{
			name: "submit fails",
			configure: func(m *MockAutomation) {
				m.SubmitFunc = func(ctx context.Context) error { return errors.New("rejected") }
			},
			wantCalls: []string{"authenticate", "locate", "compose", "submit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			automation := &MockAutomation{}
			tt.configure(automation)
			pipeline := NewSubmissionPipeline(&MockAutomationFactory{Automation: automation}, nil)

			outcome := pipeline.Submit(context.Background(), completedSession())

			if outcome.Submitted {
				t.Fatal("expected failure outcome")
			}
			if outcome.Reason == "" {
				t.Error("expected a human-readable failure reason")
			}
			if len(automation.Calls) != len(tt.wantCalls) {
				t.Errorf("expected calls %v, got %v", tt.wantCalls, automation.Calls)
			}
			if automation.CloseCalls != 1 {
				t.Errorf("expected teardown to run once, got %d Close calls", automation.CloseCalls)
			}
		})
	}
}

// TestSubmitFailsWhenSessionCannotOpen tests the factory failure path
func TestSubmitFailsWhenSessionCannotOpen(t *testing.T) {
	factory := &MockAutomationFactory{
		NewSessionFunc: func(ctx context.Context) (output.MapsAutomation, error) {
			return nil, errors.New("chrome not installed")
		},
	}
	pipeline := NewSubmissionPipeline(factory, nil)

	outcome := pipeline.Submit(context.Background(), completedSession())

	if outcome.Submitted {
		t.Fatal("expected failure outcome")
	}
	if outcome.Reason == "" {
		t.Error("expected a failure reason")
	}
}

// TestSubmitConvertsPanicToFailure tests the pipeline's fault boundary
func TestSubmitConvertsPanicToFailure(t *testing.T) {
	automation := &MockAutomation{
		AuthenticateFunc: func(ctx context.Context) error { panic("driver blew up") },
	}
	pipeline := NewSubmissionPipeline(&MockAutomationFactory{Automation: automation}, nil)

	outcome := pipeline.Submit(context.Background(), completedSession())

	if outcome.Submitted {
		t.Fatal("expected failure outcome after panic")
	}
	if automation.CloseCalls != 1 {
		t.Errorf("expected teardown to run despite the panic, got %d Close calls", automation.CloseCalls)
	}
}

// TestSubmitRecordsHistoryOnBothOutcomes tests best-effort record keeping
func TestSubmitRecordsHistoryOnBothOutcomes(t *testing.T) {
	history := &MockHistoryRepository{}
	automation := &MockAutomation{}
	pipeline := NewSubmissionPipeline(&MockAutomationFactory{Automation: automation}, history)

	pipeline.Submit(context.Background(), completedSession())

	failing := &MockAutomation{
		SubmitFunc: func(ctx context.Context) error { return errors.New("rejected") },
	}
	pipeline = NewSubmissionPipeline(&MockAutomationFactory{Automation: failing}, history)
	pipeline.Submit(context.Background(), completedSession())

	if len(history.SavedRecords) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(history.SavedRecords))
	}
	if history.SavedRecords[0].Status != domain.SubmissionStatusSubmitted {
		t.Errorf("expected first record submitted, got %q", history.SavedRecords[0].Status)
	}
	if history.SavedRecords[1].Status != domain.SubmissionStatusFailed {
		t.Errorf("expected second record failed, got %q", history.SavedRecords[1].Status)
	}
	if history.SavedRecords[1].Reason == "" {
		t.Error("expected the failed record to carry a reason")
	}
}

// TestSubmitToleratesHistoryFailure tests a storage error never changes the outcome
func TestSubmitToleratesHistoryFailure(t *testing.T) {
	history := &MockHistoryRepository{
		SaveFunc: func(record domain.ReviewRecord) error { return errors.New("db down") },
	}
	pipeline := NewSubmissionPipeline(&MockAutomationFactory{}, history)

	outcome := pipeline.Submit(context.Background(), completedSession())

	if !outcome.Submitted {
		t.Errorf("expected success despite history failure, got: %s", outcome.Reason)
	}
}
