package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stoik/scribe/internal/draft"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(drafts *draft.Service) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &Handler{drafts: drafts}

	api := r.Group("/api/v1")
	{
		api.POST("/drafts", h.CreateDraft)
		api.GET("/drafts", h.CreateDraftFromQuery)
	}

	return r
}
