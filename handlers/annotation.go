package handlers

import (
	"net/http"

	"visaflow/services/annotation"

	"github.com/gin-gonic/gin"
)

// CreateAnnotationHandler attaches a note to a profile or an account.
func CreateAnnotationHandler(svc annotation.AnnotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req annotation.NewAnnotation
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.AuthorID = c.GetString("accountID")

		a, err := svc.Create(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

// UpdateAnnotationHandler replaces the text of a note.
func UpdateAnnotationHandler(svc annotation.AnnotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Text string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		a, err := svc.Update(c.Param("id"), req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// DeleteAnnotationHandler removes a note.
func DeleteAnnotationHandler(svc annotation.AnnotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "annotation deleted"})
	}
}

// GetProfileAnnotationsHandler lists notes attached to a profile.
func GetProfileAnnotationsHandler(svc annotation.AnnotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		as, err := svc.GetByProfile(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, as)
	}
}

// GetAccountAnnotationsHandler lists notes attached to an account.
func GetAccountAnnotationsHandler(svc annotation.AnnotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		as, err := svc.GetByAccount(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, as)
	}
}
