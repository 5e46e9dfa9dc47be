package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group on the server-trusted role resolved by
// AuthMiddleware. A valid credential without the role is a 403, not a 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		if !role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
