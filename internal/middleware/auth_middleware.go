package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logger"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webresponse"
)

var disabledAuthWarning sync.Once

// AuthMiddleware checks the Authorization header against the configured
// bearer token. An empty token disables the check entirely, which is only
// meant for development setups.
func AuthMiddleware(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedToken == "" {
			disabledAuthWarning.Do(func() {
				logger.AppLogger.Warn().Msg("API_BEARER_TOKEN not configured - authentication disabled")
			})
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, webresponse.JSONResponse{
				Error:   true,
				Message: "Authentication required. Provide an Authorization header with a Bearer token.",
			})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, webresponse.JSONResponse{
				Error:   true,
				Message: "Invalid Authorization header format. Expected: Bearer <token>",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expectedToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, webresponse.JSONResponse{
				Error:   true,
				Message: "Invalid authentication token",
			})
			return
		}

		c.Next()
	}
}
