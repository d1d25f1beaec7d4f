package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonavox/voiceguard/internal/api/models"
)

// Version is the reported service version.
const Version = "1.0.0"

// HealthHandler serves the unauthenticated info endpoints.
type HealthHandler struct {
	languages []string
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(languages []string) *HealthHandler {
	return &HealthHandler{languages: languages}
}

// Root returns service information and the supported languages.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.InfoResponse{
		Message:            "AI-Generated Voice Detection API",
		Version:            Version,
		SupportedLanguages: h.languages,
	})
}

// Health reports liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
