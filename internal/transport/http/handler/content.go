package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-chat/internal/app"
	"portfolio-chat/internal/transport/http/response"
)

type ContentHandler struct {
	contentService *app.ContentService
}

func NewContentHandler(contentService *app.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentService.ListProjects()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list projects failed")
		return
	}
	response.OK(c, projects)
}

func (h *ContentHandler) ListSkills(c *gin.Context) {
	skills, err := h.contentService.ListSkills()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list skills failed")
		return
	}
	response.OK(c, skills)
}

func (h *ContentHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.contentService.ListExperiences()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list experiences failed")
		return
	}
	response.OK(c, experiences)
}

func (h *ContentHandler) GetPersonalInfo(c *gin.Context) {
	info, err := h.contentService.GetPersonalInfo()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get personal info failed")
		return
	}
	if info == nil {
		response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, "personal info not found")
		return
	}
	response.OK(c, info)
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.contentService.ListTestimonials()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list testimonials failed")
		return
	}
	response.OK(c, testimonials)
}

func (h *ContentHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.contentService.ListFAQs()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list faqs failed")
		return
	}
	response.OK(c, faqs)
}
