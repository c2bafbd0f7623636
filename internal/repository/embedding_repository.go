package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio-chat/internal/model"
)

// EmbeddingRepository persists one embedding row per (kind, ref_id).
type EmbeddingRepository struct {
	db *gorm.DB
}

func NewEmbeddingRepository(db *gorm.DB) *EmbeddingRepository {
	return &EmbeddingRepository{db: db}
}

// Upsert replaces any existing row with the same (kind, ref_id). Re-running
// an index job therefore never accumulates duplicates.
func (r *EmbeddingRepository) Upsert(entry *model.ContentEmbedding) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kind"}, {Name: "ref_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"source_text", "embedding", "model_tag", "updated_at",
		}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("upsert content embedding failed: %w", err)
	}
	return nil
}

// ScanAll returns every embedding row. The corpus is small by design, so a
// full read is cheap; callers must not rely on a particular order beyond it
// being stable for an unchanged table.
func (r *EmbeddingRepository) ScanAll() ([]model.ContentEmbedding, error) {
	var entries []model.ContentEmbedding
	if err := r.db.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("scan content embeddings failed: %w", err)
	}
	return entries, nil
}

// Get returns the embedding for one record, or nil when absent.
func (r *EmbeddingRepository) Get(kind model.ContentKind, refID string) (*model.ContentEmbedding, error) {
	var entry model.ContentEmbedding
	if err := r.db.Where("kind = ? AND ref_id = ?", kind, refID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content embedding failed: %w", err)
	}
	return &entry, nil
}

// DeleteByKindAndRefID removes one embedding row (administrative path).
func (r *EmbeddingRepository) DeleteByKindAndRefID(kind model.ContentKind, refID string) error {
	if err := r.db.Where("kind = ? AND ref_id = ?", kind, refID).Delete(&model.ContentEmbedding{}).Error; err != nil {
		return fmt.Errorf("delete content embedding failed: %w", err)
	}
	return nil
}
