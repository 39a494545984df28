package handlers

import (
	"net/http"

	"visaflow/services/notification"

	"github.com/gin-gonic/gin"
)

// GetNotificationsHandler lists notifications, newest first.
func GetNotificationsHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ns, err := svc.GetNotifications()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ns)
	}
}

// MarkNotificationViewedHandler flips the viewed flag of a notification.
func MarkNotificationViewedHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.MarkViewed(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}
