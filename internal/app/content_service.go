package app

import (
	"portfolio-chat/internal/model"
	"portfolio-chat/internal/repository"
)

// ContentService exposes the portfolio content listings backing the site.
type ContentService struct {
	contentRepo *repository.ContentRepository
}

func NewContentService(contentRepo *repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

func (s *ContentService) ListProjects() ([]model.Project, error) {
	return s.contentRepo.ListPublishedProjects()
}

func (s *ContentService) ListSkills() ([]model.Skill, error) {
	return s.contentRepo.ListSkills()
}

func (s *ContentService) ListExperiences() ([]model.Experience, error) {
	return s.contentRepo.ListExperiences()
}

func (s *ContentService) GetPersonalInfo() (*model.PersonalInfo, error) {
	return s.contentRepo.FirstPersonalInfo()
}

func (s *ContentService) ListTestimonials() ([]model.Testimonial, error) {
	return s.contentRepo.ListTestimonials()
}

func (s *ContentService) ListFAQs() ([]model.FAQ, error) {
	return s.contentRepo.ListActiveFAQs()
}
