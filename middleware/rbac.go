package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RBACMiddleware allows the request through only when the authenticated
// user's role is in the allowed set. Must run after AuthMiddleware.
func RBACMiddleware(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "FORBIDDEN", "message": "insufficient role for this operation"},
			})
			return
		}
		c.Next()
	}
}
