package repository

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"portfolio-chat/internal/model"
)

// ContentRepository reads the portfolio content tables. All list methods
// return only publicly visible rows; the point lookups behind Resolve are
// unfiltered because an embedded record stays retrievable until re-indexed.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) ListPublishedProjects() ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return projects, nil
}

func (r *ContentRepository) ListSkills() ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.Order("category ASC, name ASC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return skills, nil
}

func (r *ContentRepository) ListExperiences() ([]model.Experience, error) {
	var experiences []model.Experience
	if err := r.db.Order("start_date DESC").Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("list experiences failed: %w", err)
	}
	return experiences, nil
}

func (r *ContentRepository) ListPersonalInfo() ([]model.PersonalInfo, error) {
	var infos []model.PersonalInfo
	if err := r.db.Find(&infos).Error; err != nil {
		return nil, fmt.Errorf("list personal info failed: %w", err)
	}
	return infos, nil
}

// FirstPersonalInfo returns the profile row, or nil when none exists.
func (r *ContentRepository) FirstPersonalInfo() (*model.PersonalInfo, error) {
	var info model.PersonalInfo
	if err := r.db.Order("id ASC").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get personal info failed: %w", err)
	}
	return &info, nil
}

func (r *ContentRepository) ListTestimonials() ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("list testimonials failed: %w", err)
	}
	return testimonials, nil
}

func (r *ContentRepository) ListActiveFAQs() ([]model.FAQ, error) {
	var faqs []model.FAQ
	if err := r.db.Where("is_active = ?", true).Order("times_asked DESC, category ASC").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("list faqs failed: %w", err)
	}
	return faqs, nil
}

// Resolve looks up the content record behind an embedding reference. A nil
// result with nil error means the record no longer exists (stale embedding).
func (r *ContentRepository) Resolve(kind model.ContentKind, refID string) (*model.Content, error) {
	switch kind {
	case model.KindProject:
		var project model.Project
		if err := r.db.Where("id = ?", refID).First(&project).Error; err != nil {
			return nil, ignoreNotFound(err, "resolve project")
		}
		return &model.Content{Kind: kind, Project: &project}, nil
	case model.KindSkill:
		id, err := parseUintRef(refID)
		if err != nil {
			return nil, nil
		}
		var skill model.Skill
		if err := r.db.First(&skill, id).Error; err != nil {
			return nil, ignoreNotFound(err, "resolve skill")
		}
		return &model.Content{Kind: kind, Skill: &skill}, nil
	case model.KindExperience:
		id, err := parseUintRef(refID)
		if err != nil {
			return nil, nil
		}
		var experience model.Experience
		if err := r.db.First(&experience, id).Error; err != nil {
			return nil, ignoreNotFound(err, "resolve experience")
		}
		return &model.Content{Kind: kind, Experience: &experience}, nil
	case model.KindPersonalInfo:
		id, err := parseUintRef(refID)
		if err != nil {
			return nil, nil
		}
		var info model.PersonalInfo
		if err := r.db.First(&info, id).Error; err != nil {
			return nil, ignoreNotFound(err, "resolve personal info")
		}
		return &model.Content{Kind: kind, PersonalInfo: &info}, nil
	case model.KindTestimonial:
		id, err := parseUintRef(refID)
		if err != nil {
			return nil, nil
		}
		var testimonial model.Testimonial
		if err := r.db.First(&testimonial, id).Error; err != nil {
			return nil, ignoreNotFound(err, "resolve testimonial")
		}
		return &model.Content{Kind: kind, Testimonial: &testimonial}, nil
	case model.KindFAQ:
		id, err := parseUintRef(refID)
		if err != nil {
			return nil, nil
		}
		var faq model.FAQ
		if err := r.db.First(&faq, id).Error; err != nil {
			return nil, ignoreNotFound(err, "resolve faq")
		}
		return &model.Content{Kind: kind, FAQ: &faq}, nil
	}
	return nil, nil
}

func parseUintRef(refID string) (uint, error) {
	parsed, err := strconv.ParseUint(refID, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

func ignoreNotFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
