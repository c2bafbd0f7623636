package repository

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio-chat/internal/model"
)

// RetrievalLogRepository appends search audit rows. Write-once; nothing in
// the service reads these back.
type RetrievalLogRepository struct {
	db *gorm.DB
}

func NewRetrievalLogRepository(db *gorm.DB) *RetrievalLogRepository {
	return &RetrievalLogRepository{db: db}
}

func (r *RetrievalLogRepository) Append(entry *model.RetrievalLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("append retrieval log failed: %w", err)
	}
	return nil
}
