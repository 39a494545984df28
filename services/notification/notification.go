package notification

import (
	"fmt"

	notificationRepo "visaflow/database/repository/notification"
	"visaflow/models"
	"visaflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// NotificationService surfaces profile status transitions to staff.
type NotificationService interface {
	// GetNotifications retrieves notifications, newest first.
	GetNotifications() ([]models.Notification, error)
	// MarkViewed flips the viewed flag of a notification.
	MarkViewed(id string) (*models.Notification, error)
	// ProfileStatusChanged records a profile status transition. Failures
	// are logged, not propagated; a lost notification must not fail the
	// operation that caused it.
	ProfileStatusChanged(profile *models.Profile, newStatus string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// GetNotifications retrieves notifications, newest first.
func (s *DefaultNotificationService) GetNotifications() ([]models.Notification, error) {
	return s.Repo.GetAll()
}

// MarkViewed flips the viewed flag of a notification.
func (s *DefaultNotificationService) MarkViewed(id string) (*models.Notification, error) {
	n, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notification %s: %w", id, err)
	}
	if n == nil {
		return nil, utils.NotFoundError{Message: "notification not found"}
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"viewed": true}); err != nil {
		return nil, fmt.Errorf("failed to mark notification %s viewed: %w", id, err)
	}
	n.Viewed = true
	return n, nil
}

// ProfileStatusChanged records a profile status transition.
func (s *DefaultNotificationService) ProfileStatusChanged(profile *models.Profile, newStatus string) {
	n := &models.Notification{
		ID:        uuid.NewString(),
		ProfileID: profile.ID,
		Message:   fmt.Sprintf("Profile %s is now %s", profile.Name, newStatus),
	}
	if err := s.Repo.Create(n); err != nil {
		utils.GetLogger().Error("failed to create notification",
			zap.String("profileID", profile.ID), zap.Error(err))
	}
}
