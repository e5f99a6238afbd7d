package middleware

import (
	"net/http"
	"strings"

	"todo_service/internal/service"

	"github.com/gin-gonic/gin"
)

// Auth guards a route with a bearer token. A missing token is a 401, a
// token that fails verification is a 403. The two cases are deliberately
// different statuses. On success the identity is stored on the context
// under "user_id" and "username".
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		identity, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("username", identity.Username)
		c.Next()
	}
}

// UserID reads the authenticated user id set by Auth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
