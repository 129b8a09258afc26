package middleware

import (
	"net/http"
	"strings"

	"dropbase/airdrop-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewJWTMiddleware gates every business route behind a bearer token.
// On success the decoded identity is attached to the context as userID
// and email; everything downstream can trust those values.
func NewJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":   "No token provided",
				"requestID": requestID,
			})
			return
		}

		identity, err := security.ParseAuthToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":   "Invalid token",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected auth token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("email", identity.Email)
		c.Next()
	}
}
