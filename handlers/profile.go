package handlers

import (
	"net/http"

	"visaflow/services/profile"

	"github.com/gin-gonic/gin"
)

// CreateProfileHandler creates a profile (and its form) for an account.
func CreateProfileHandler(svc profile.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profile.NewProfile
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		p, err := svc.CreateProfile(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// GetProfileHandler fetches one profile by ID.
func GetProfileHandler(svc profile.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetProfile(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// GetAccountProfilesHandler lists profiles owned by an account.
func GetAccountProfilesHandler(svc profile.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ps, err := svc.GetProfilesByAccount(c.Param("accountId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ps)
	}
}

// UpdateProfileHandler applies a partial profile update, including status
// transitions.
func UpdateProfileHandler(svc profile.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profile.ProfileUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.ID = c.Param("id")

		p, err := svc.UpdateProfile(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// DeleteProfileHandler removes a profile together with its form.
func DeleteProfileHandler(svc profile.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProfile(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
	}
}
