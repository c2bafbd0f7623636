package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageTypeUser      = "user"
	MessageTypeAssistant = "assistant"
)

// Response types classify how the UI should render an assistant message.
const (
	ResponseTypeText               = "text"
	ResponseTypeTextWithMedia      = "text_with_media"
	ResponseTypeProjectShowcase    = "project_showcase"
	ResponseTypeSkillSummary       = "skill_summary"
	ResponseTypeExperienceTimeline = "experience_timeline"
	ResponseTypeError              = "error"
)

type ChatMessage struct {
	ID          string `gorm:"type:char(36);primaryKey" json:"id"`
	SessionID   string `gorm:"type:char(36);not null;index" json:"session_id"`
	MessageType string `gorm:"size:20;not null;index" json:"message_type"`
	Content     string `gorm:"type:text;not null" json:"content"`

	ResponseType          string   `gorm:"size:30" json:"response_type,omitempty"`
	ReferencedProjects    []string `gorm:"type:text;serializer:json" json:"referenced_projects"`
	ReferencedSkills      []uint   `gorm:"type:text;serializer:json" json:"referenced_skills"`
	ReferencedExperiences []uint   `gorm:"type:text;serializer:json" json:"referenced_experiences"`
	MediaURLs             []string `gorm:"type:text;serializer:json" json:"media_urls"`

	RetrievalContext string  `gorm:"type:text" json:"retrieval_context,omitempty"` // JSON blob
	ConfidenceScore  float64 `json:"confidence_score"`
	ResponseTimeMs   int     `json:"response_time_ms"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
