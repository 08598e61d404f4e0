package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if c.GetBool(isAdminKey) {
		c.Next()
		return
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
}
