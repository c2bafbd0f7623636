package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-chat/internal/app"
	"portfolio-chat/internal/model"
	"portfolio-chat/internal/transport/http/response"
)

type RAGHandler struct {
	ragService *app.RAGService
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	TopK  int    `json:"top_k"`
}

func NewRAGHandler(ragService *app.RAGService) *RAGHandler {
	return &RAGHandler{ragService: ragService}
}

// Search runs retrieval only, without generation. Useful for inspecting
// what the pipeline would ground an answer on.
func (h *RAGHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	matches, err := h.ragService.Search(c.Request.Context(), req.Query, req.TopK)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrQueryEmpty):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "search failed")
		}
		return
	}

	response.OK(c, gin.H{
		"query":   req.Query,
		"matches": matches,
	})
}

// Reindex re-embeds the corpus. An optional ?kind= restricts the run to one
// content kind.
func (h *RAGHandler) Reindex(c *gin.Context) {
	kindRaw := c.Query("kind")

	var (
		result interface{}
		err    error
	)
	if kindRaw == "" {
		result, err = h.ragService.ReindexAll(c.Request.Context())
	} else {
		result, err = h.ragService.ReindexKind(c.Request.Context(), model.ContentKind(kindRaw))
	}
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unknown content kind "+strconv.Quote(kindRaw))
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "reindex failed")
		}
		return
	}

	response.OK(c, result)
}
