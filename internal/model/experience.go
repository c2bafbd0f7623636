package model

import "time"

type Experience struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"size:200;not null" json:"title"`
	Organization   string     `gorm:"size:200;not null" json:"organization"`
	Location       string     `gorm:"size:100" json:"location"`
	ExperienceType string     `gorm:"size:20;not null;index" json:"experience_type"`
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Current        bool       `gorm:"default:false" json:"current"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	KeyAchievements []string  `gorm:"type:text;serializer:json" json:"key_achievements"`
}

var experienceTypeDisplay = map[string]string{
	"work":      "Work Experience",
	"education": "Education",
	"volunteer": "Volunteer",
	"freelance": "Freelance",
	"personal":  "Personal Project",
}

// TypeDisplay returns the human-readable experience type.
func (e *Experience) TypeDisplay() string {
	if label, ok := experienceTypeDisplay[e.ExperienceType]; ok {
		return label
	}
	return e.ExperienceType
}

// DateRange renders the duration, using "Present" for open-ended entries.
func (e *Experience) DateRange() string {
	start := e.StartDate.Format("2006-01-02")
	if e.EndDate == nil {
		return start + " to Present"
	}
	return start + " to " + e.EndDate.Format("2006-01-02")
}
