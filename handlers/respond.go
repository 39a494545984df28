package handlers

import (
	"errors"
	"net/http"

	"visaflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates the service-layer failure taxonomy into an HTTP
// response. Unrecognized errors become an opaque 500; the detail is logged,
// never echoed.
func respondError(c *gin.Context, err error) {
	var (
		notFound     utils.NotFoundError
		conflict     utils.ConflictError
		unauthorized utils.UnauthorizedError
		badRequest   utils.BadRequestError
		validation   utils.ValidationError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": validation.Fields})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": unauthorized.Message})
	case errors.As(err, &badRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": badRequest.Message})
	default:
		utils.GetLogger().Error("unhandled service error",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
