package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stoik/scribe/internal/draft"
	"github.com/stoik/scribe/internal/models"
)

// Handler serves the draft endpoints. Both entry points accept the same four
// fields and share the compose path; they differ only in how input is bound.
type Handler struct {
	drafts *draft.Service
}

// CreateDraft accepts drafting parameters as a JSON body.
func (h *Handler) CreateDraft(c *gin.Context) {
	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.compose(c, req)
}

// CreateDraftFromQuery accepts the same four fields as URL query parameters.
func (h *Handler) CreateDraftFromQuery(c *gin.Context) {
	var req models.DraftRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	h.compose(c, req)
}

func (h *Handler) compose(c *gin.Context, req models.DraftRequest) {
	result, err := h.drafts.Compose(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeError maps compose failures to status codes. Provider failure detail
// is logged server-side only; response bodies carry generic messages and
// never credential material.
func (h *Handler) writeError(c *gin.Context, err error) {
	var vErr *draft.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.Is(err, draft.ErrEmptyProviderResponse):
		log.Printf("[%s] provider returned an empty response", requestID(c))
		c.JSON(http.StatusBadGateway, gin.H{"error": "email provider returned an empty response"})
	default:
		log.Printf("[%s] draft generation failed: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate email draft"})
	}
}
