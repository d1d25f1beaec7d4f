package api

import (
	"github.com/gin-gonic/gin"

	"github.com/sonavox/voiceguard/internal/api/handlers"
	"github.com/sonavox/voiceguard/internal/api/middleware"
)

// registerRoutes wires the endpoint handlers. Only the detection
// endpoint requires an API key.
func registerRoutes(engine *gin.Engine, health *handlers.HealthHandler, detection *handlers.DetectionHandler, apiKey string) {
	engine.GET("/", health.Root)
	engine.GET("/health", health.Health)

	authorized := engine.Group("/api", middleware.APIKeyAuth(apiKey))
	authorized.POST("/voice-detection", detection.Detect)
}
