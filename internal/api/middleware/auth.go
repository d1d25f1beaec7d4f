package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sonavox/voiceguard/internal/api/models"
)

// APIKeyHeader is the request header carrying the client's API key.
const APIKeyHeader = "x-api-key"

// APIKeyAuth rejects requests whose x-api-key header does not match the
// configured key. Keys are trimmed to tolerate whitespace from clients
// and env files, and compared in constant time.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	expected := []byte(strings.TrimSpace(apiKey))

	return func(c *gin.Context) {
		if len(expected) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
				Status:  "error",
				Message: "API key is not configured",
			})
			return
		}

		provided := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  "error",
				Message: "Missing API key. Please provide x-api-key header.",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  "error",
				Message: "Invalid API key",
			})
			return
		}

		c.Next()
	}
}
