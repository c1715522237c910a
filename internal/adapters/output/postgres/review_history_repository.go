package postgres

import (
	"fmt"

	"whatsapp-feedback-bot/internal/domain"
	"whatsapp-feedback-bot/internal/ports/output"

	"gorm.io/gorm"
)

// Compile-time check to ensure ReviewHistoryRepository implements the output port
var _ output.ReviewHistoryRepository = (*ReviewHistoryRepository)(nil)

// ReviewHistoryRepository struct - Output adapter persisting submission
// attempts to postgres
type ReviewHistoryRepository struct {
	db *gorm.DB
}

// NewReviewHistoryRepository func - Creates new review history repository
func NewReviewHistoryRepository(db *gorm.DB) *ReviewHistoryRepository {
	return &ReviewHistoryRepository{db: db}
}

// Save persists one submission attempt record
func (r *ReviewHistoryRepository) Save(record domain.ReviewRecord) error {
	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save review record: %w", err)
	}
	return nil
}
