package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission outcome statuses stored in the review history
const (
	// SubmissionStatusSubmitted - the review was posted successfully
	SubmissionStatusSubmitted = "submitted"
	// SubmissionStatusFailed - some automation step failed before completion
	SubmissionStatusFailed = "failed"
)

// SubmissionOutcome is the tri-state result of a submission attempt:
// Submitted, or Failed with a short human-readable reason naming the step
// that failed. Internal faults are never surfaced here raw.
type SubmissionOutcome struct {
	Submitted bool
	Reason    string
}

// ReviewRecord - Core domain entity for the submission history
type ReviewRecord struct {
	ID         *uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID     string     `gorm:"type:varchar(20);not null;index"`
	PlaceName  string     `gorm:"type:varchar(100);not null;"`
	Rating     int        `gorm:"not null;"`
	ReviewText string     `gorm:"type:TEXT;not null;"`
	PhotoCount int        `gorm:"not null;"`
	Status     string     `gorm:"type:varchar(10);not null;"`
	Reason     string     `gorm:"type:TEXT"`
	CreatedAt  *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (r *ReviewRecord) TableName() string {
	return "review_records"
}

// BeforeCreate hook - generates UUID before creating
func (r *ReviewRecord) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// NewReviewRecord builds a history record from a completed session and its outcome
func NewReviewRecord(session *ReviewSession, outcome SubmissionOutcome) ReviewRecord {
	status := SubmissionStatusSubmitted
	if !outcome.Submitted {
		status = SubmissionStatusFailed
	}
	return ReviewRecord{
		UserID:     session.UserID,
		PlaceName:  session.PlaceName,
		Rating:     session.Rating,
		ReviewText: session.ReviewText,
		PhotoCount: len(session.PhotoRefs),
		Status:     status,
		Reason:     outcome.Reason,
	}
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&ReviewRecord{})
	if err != nil {
		panic(err)
	}
}
