package model

import (
	"encoding/json"
	"time"
)

// ContentEmbedding stores the embedding of exactly one content record.
// Vector is stored as a JSON array of float32 for portability; at most one
// row exists per (kind, ref_id).
type ContentEmbedding struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Kind       ContentKind `gorm:"size:20;not null;uniqueIndex:idx_kind_ref;index" json:"kind"`
	RefID      string      `gorm:"size:100;not null;uniqueIndex:idx_kind_ref;index" json:"ref_id"`
	SourceText string      `gorm:"type:text;not null" json:"source_text"`
	Embedding  string      `gorm:"type:mediumtext" json:"-"` // JSON array of float32
	ModelTag   string      `gorm:"size:100;not null" json:"model_tag"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Vector returns the parsed embedding slice; empty on parse error.
func (e *ContentEmbedding) Vector() []float32 {
	if e.Embedding == "" {
		return nil
	}
	var v []float32
	_ = json.Unmarshal([]byte(e.Embedding), &v)
	return v
}

// SetVector stores the embedding as JSON.
func (e *ContentEmbedding) SetVector(vec []float32) {
	if len(vec) == 0 {
		e.Embedding = "[]"
		return
	}
	b, _ := json.Marshal(vec)
	e.Embedding = string(b)
}
