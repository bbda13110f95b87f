package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackr/jobtrackr/internal/auth"
)

const userIDKey = "user_id"

// Auth verifies the bearer token and stores the session's user id on the
// request context. Every application route sits behind this; the error body
// is uniform so clients can key off it.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (string, bool) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}
