package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "skinserv/src/app"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth rejects requests carrying a wrong X-API-Key. A request
// without the header is allowed through: the secret is optional, not
// enforced. That mirrors the documented contract, surprising as it is.
func APIKeyAuth(apiKey string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(apiKeyHeader)
		if header != "" && header != apiKey {
			log.Warn("invalid API key attempt", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   app.ErrCodeInvalidAPIKey,
				"message": "Invalid API key provided",
			})
			return
		}
		c.Next()
	}
}
