package notificationRepo

import (
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// GetByID retrieves a notification by its unique ID, or nil if absent.
	GetByID(id string) (*models.Notification, error)
	// GetAll retrieves notifications, newest first.
	GetAll() ([]models.Notification, error)
	// Create inserts a new notification record.
	Create(notification *models.Notification) error
	// UpdateWithDocument applies a partial $set update to a notification.
	UpdateWithDocument(id string, fields bson.M) error
}
