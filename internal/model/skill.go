package model

// Skill categories and proficiency levels mirror the admin vocabulary; they
// are stored as the short codes and expanded via display maps below.
const (
	SkillCategoryDesign    = "design"
	SkillCategoryResearch  = "research"
	SkillCategoryTechnical = "technical"
	SkillCategorySoft      = "soft"
	SkillCategoryProcess   = "process"
)

type Skill struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"size:100;not null" json:"name"`
	Category          string `gorm:"size:20;not null;index" json:"category"`
	Proficiency       string `gorm:"size:20;not null" json:"proficiency"`
	YearsOfExperience int    `gorm:"default:0" json:"years_of_experience"`
	Description       string `gorm:"type:text" json:"description"`
}

var skillCategoryDisplay = map[string]string{
	SkillCategoryDesign:    "Design Tools",
	SkillCategoryResearch:  "Research Methods",
	SkillCategoryTechnical: "Technical Skills",
	SkillCategorySoft:      "Soft Skills",
	SkillCategoryProcess:   "Process & Methods",
}

var proficiencyDisplay = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
	"expert":       "Expert",
}

// CategoryDisplay returns the human-readable category label.
func (s *Skill) CategoryDisplay() string {
	if label, ok := skillCategoryDisplay[s.Category]; ok {
		return label
	}
	return s.Category
}

// ProficiencyDisplay returns the human-readable proficiency label.
func (s *Skill) ProficiencyDisplay() string {
	if label, ok := proficiencyDisplay[s.Proficiency]; ok {
		return label
	}
	return s.Proficiency
}
