package model

import "time"

// FAQ stores a curated question/answer pair. Active FAQs are embedded like
// any other content kind so stored answers participate in retrieval.
type FAQ struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Question   string    `gorm:"size:500;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	Category   string    `gorm:"size:100;index" json:"category"`
	TimesAsked int       `gorm:"default:0" json:"times_asked"`
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
