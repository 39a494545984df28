package middleware

import (
	"net/http"

	"visaflow/models"

	"github.com/gin-gonic/gin"
)

// requireRole aborts unless the authenticated account has one of the
// allowed roles. Must run after AuthRequired. Gate failures are all 401
// with a generic message; the response never says which role was missing.
func requireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("accountRole")
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}

// CollaboratorRequired admits any staff role.
func CollaboratorRequired() gin.HandlerFunc {
	return requireRole(models.RoleCollaborator, models.RoleAdmin)
}

// AdminRequired admits admins only.
func AdminRequired() gin.HandlerFunc {
	return requireRole(models.RoleAdmin)
}
