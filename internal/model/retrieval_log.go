package model

import (
	"encoding/json"
	"time"
)

// RetrievalLog records one similarity search for offline analysis. Rows are
// append-only and never read back by the service.
type RetrievalLog struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Query               string    `gorm:"type:text;not null" json:"query"`
	QueryEmbedding      string    `gorm:"type:mediumtext" json:"-"` // JSON array of float32
	RetrievedContentIDs []string  `gorm:"type:text;serializer:json" json:"retrieved_content_ids"`
	SimilarityScores    []float64 `gorm:"type:text;serializer:json" json:"similarity_scores"`
	CreatedAt           time.Time `gorm:"index" json:"created_at"`
}

// SetQueryEmbedding stores the query vector as JSON.
func (l *RetrievalLog) SetQueryEmbedding(vec []float32) {
	if len(vec) == 0 {
		l.QueryEmbedding = "[]"
		return
	}
	b, _ := json.Marshal(vec)
	l.QueryEmbedding = string(b)
}
