package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-connect/pkg/response"
)

// userIDKey is the gin context key the identity middleware populates.
const userIDKey = "user_id"

// Auth extracts the authenticated user identity. Authentication of the
// application's own users happens upstream; the gateway forwards the
// resolved identity in X-User-ID, which this service trusts.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
