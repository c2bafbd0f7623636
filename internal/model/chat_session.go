package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSession struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	SessionName   string    `gorm:"size:200" json:"session_name"`
	UserIP        string    `gorm:"size:45" json:"user_ip"`
	UserAgent     string    `gorm:"type:text" json:"user_agent"`
	TotalMessages int       `gorm:"default:0" json:"total_messages"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
