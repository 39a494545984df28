package middleware

import (
	"net/http"

	profileRepo "visaflow/database/repository/profile"
	"visaflow/models"

	"github.com/gin-gonic/gin"
)

// ProfileAccessRequired guards routes keyed by :profileId. Staff may reach
// any profile; clients only their own. A profile owned by someone else is
// reported as absent, not forbidden, so ownership cannot be probed.
// Must run after AuthRequired.
func ProfileAccessRequired(profiles profileRepo.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if models.StaffRole(c.GetString("accountRole")) {
			c.Next()
			return
		}

		profile, err := profiles.GetByID(c.Param("profileId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if profile == nil || profile.AccountID != c.GetString("accountID") {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.Next()
	}
}
