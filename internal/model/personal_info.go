package model

type PersonalInfo struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Bio      string `gorm:"type:text;not null" json:"bio"`
	Location string `gorm:"size:100" json:"location"`
	Email    string `gorm:"size:128" json:"email"`

	LinkedinURL  string `gorm:"size:512" json:"linkedin_url"`
	GithubURL    string `gorm:"size:512" json:"github_url"`
	PortfolioURL string `gorm:"size:512" json:"portfolio_url"`
	BehanceURL   string `gorm:"size:512" json:"behance_url"`
	DribbbleURL  string `gorm:"size:512" json:"dribbble_url"`

	YearsOfExperience  int    `gorm:"default:0" json:"years_of_experience"`
	AvailabilityStatus string `gorm:"size:100;default:'Open to opportunities'" json:"availability_status"`

	FunFacts         []string `gorm:"type:text;serializer:json" json:"fun_facts"`
	DesignPhilosophy string   `gorm:"type:text" json:"design_philosophy"`
	CareerGoals      string   `gorm:"type:text" json:"career_goals"`
}
