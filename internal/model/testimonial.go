package model

import "time"

type Testimonial struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AuthorName    string    `gorm:"size:100;not null" json:"author_name"`
	AuthorTitle   string    `gorm:"size:200" json:"author_title"`
	AuthorCompany string    `gorm:"size:100" json:"author_company"`
	AuthorImage   string    `gorm:"size:512" json:"author_image"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Rating        int       `gorm:"default:5" json:"rating"`
	ProjectID     string    `gorm:"type:char(36);index" json:"project_id"`
	Featured      bool      `gorm:"default:false" json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
}
