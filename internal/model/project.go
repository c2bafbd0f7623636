package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title             string    `gorm:"size:200;not null" json:"title"`
	Slug              string    `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	DetailedCaseStudy string    `gorm:"type:text" json:"detailed_case_study"`
	Category          string    `gorm:"size:20;not null;index" json:"category"`
	Tags              []string  `gorm:"type:text;serializer:json" json:"tags"`

	FeaturedImage string   `gorm:"size:512" json:"featured_image"`
	GalleryImages []string `gorm:"type:text;serializer:json" json:"gallery_images"`
	VideoURL      string   `gorm:"size:512" json:"video_url"`
	PrototypeURL  string   `gorm:"size:512" json:"prototype_url"`
	LiveURL       string   `gorm:"size:512" json:"live_url"`
	GithubURL     string   `gorm:"size:512" json:"github_url"`

	Client   string `gorm:"size:100" json:"client"`
	Role     string `gorm:"size:100;not null" json:"role"`
	Duration string `gorm:"size:50" json:"duration"`
	TeamSize int    `gorm:"default:1" json:"team_size"`

	ProblemStatement string   `gorm:"type:text" json:"problem_statement"`
	SolutionOverview string   `gorm:"type:text" json:"solution_overview"`
	KeyAchievements  []string `gorm:"type:text;serializer:json" json:"key_achievements"`
	TechnologiesUsed []string `gorm:"type:text;serializer:json" json:"technologies_used"`

	Featured  bool      `gorm:"default:false" json:"featured"`
	Published bool      `gorm:"default:true;index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var projectCategoryDisplay = map[string]string{
	"web":       "Web Design",
	"mobile":    "Mobile App",
	"ux":        "UX Research",
	"branding":  "Branding",
	"prototype": "Prototype",
	"other":     "Other",
}

// CategoryDisplay returns the human-readable category label.
func (p *Project) CategoryDisplay() string {
	if label, ok := projectCategoryDisplay[p.Category]; ok {
		return label
	}
	return p.Category
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
