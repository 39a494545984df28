package profile

import (
	"fmt"
	"time"

	formRepo "visaflow/database/repository/form"
	profileRepo "visaflow/database/repository/profile"
	"visaflow/models"
	"visaflow/services/notification"
	"visaflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ProfileService defines business logic for profile lifecycle operations.
type ProfileService interface {
	// CreateProfile creates a profile and its form together.
	CreateProfile(input NewProfile) (*models.Profile, error)
	// GetProfile retrieves a profile by its unique ID.
	GetProfile(id string) (*models.Profile, error)
	// GetProfilesByAccount retrieves all profiles owned by an account.
	GetProfilesByAccount(accountID string) ([]models.Profile, error)
	// UpdateProfile applies a partial update, validating status transitions.
	UpdateProfile(req ProfileUpdateRequest) (*models.Profile, error)
	// DeleteProfile removes a profile together with its form.
	DeleteProfile(id string) error
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Profiles profileRepo.ProfileRepository
	Forms    formRepo.FormRepository
	Notifier notification.NotificationService
}

// NewProfile carries the input of a profile-creation operation.
type NewProfile struct {
	AccountID string `json:"accountId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
	VisaType  string `json:"visaType"`
	VisaClass string `json:"visaClass"`
}

// ProfileUpdateRequest carries a partial profile update.
type ProfileUpdateRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	DSNumber      string `json:"dsNumber"`
	Protocol      string `json:"protocol"`
	ProcessNumber string `json:"processNumber"`
	VisaType      string `json:"visaType"`
	VisaClass     string `json:"visaClass"`
	InterviewDate string `json:"interviewDate"`
}

var validCategories = map[string]bool{
	models.CategoryAmericanVisa: true,
	models.CategoryPassport:     true,
	models.CategoryETA:          true,
}

var validStatuses = map[string]bool{
	models.StatusAwaiting: true,
	models.StatusFilling:  true,
	models.StatusFilled:   true,
	models.StatusEmitted:  true,
}

// CreateProfile creates a profile and its form together; a profile never
// exists without its form.
func (s *DefaultProfileService) CreateProfile(input NewProfile) (*models.Profile, error) {
	if !validCategories[input.Category] {
		return nil, utils.BadRequestError{Message: fmt.Sprintf("invalid category %q", input.Category)}
	}

	p := &models.Profile{
		ID:        uuid.NewString(),
		AccountID: input.AccountID,
		Name:      input.Name,
		Category:  input.Category,
		Status:    models.StatusAwaiting,
		VisaType:  input.VisaType,
		VisaClass: input.VisaClass,
	}
	if err := s.Profiles.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	f := &models.Form{
		ID:        uuid.NewString(),
		ProfileID: p.ID,
	}
	if err := s.Forms.Create(f); err != nil {
		return nil, fmt.Errorf("failed to create form for profile %s: %w", p.ID, err)
	}

	utils.GetLogger().Info("profile created",
		zap.String("profileID", p.ID), zap.String("accountID", p.AccountID))
	return p, nil
}

// GetProfile retrieves a profile by its unique ID.
func (s *DefaultProfileService) GetProfile(id string) (*models.Profile, error) {
	p, err := s.Profiles.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", id, err)
	}
	if p == nil {
		return nil, utils.NotFoundError{Message: "profile not found"}
	}
	return p, nil
}

// GetProfilesByAccount retrieves all profiles owned by an account.
func (s *DefaultProfileService) GetProfilesByAccount(accountID string) ([]models.Profile, error) {
	return s.Profiles.GetByAccountID(accountID)
}

// UpdateProfile applies a partial update. Marking a profile emitted
// requires an interview date, either already stored or in this request.
func (s *DefaultProfileService) UpdateProfile(req ProfileUpdateRequest) (*models.Profile, error) {
	p, err := s.GetProfile(req.ID)
	if err != nil {
		return nil, err
	}

	updateFields := bson.M{}
	if req.Name != "" {
		updateFields["name"] = req.Name
	}
	if req.DSNumber != "" {
		updateFields["dsNumber"] = req.DSNumber
	}
	if req.Protocol != "" {
		updateFields["protocol"] = req.Protocol
	}
	if req.ProcessNumber != "" {
		updateFields["processNumber"] = req.ProcessNumber
	}
	if req.VisaType != "" {
		updateFields["visaType"] = req.VisaType
	}
	if req.VisaClass != "" {
		updateFields["visaClass"] = req.VisaClass
	}

	var interviewDate *time.Time
	if req.InterviewDate != "" {
		d, err := time.Parse("2006-01-02", req.InterviewDate)
		if err != nil {
			return nil, utils.BadRequestError{Message: fmt.Sprintf("invalid interview date %q", req.InterviewDate)}
		}
		interviewDate = &d
		updateFields["interviewDate"] = d
	}

	if req.Status != "" && req.Status != p.Status {
		if !validStatuses[req.Status] {
			return nil, utils.BadRequestError{Message: fmt.Sprintf("invalid status %q", req.Status)}
		}
		if req.Status == models.StatusEmitted && p.InterviewDate == nil && interviewDate == nil {
			return nil, utils.BadRequestError{Message: "profile lacks a required date"}
		}
		updateFields["status"] = req.Status
	}

	if len(updateFields) == 0 {
		return nil, utils.BadRequestError{Message: "no updatable fields provided"}
	}

	if err := s.Profiles.UpdateWithDocument(req.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", req.ID, err)
	}

	if status, ok := updateFields["status"].(string); ok && s.Notifier != nil {
		s.Notifier.ProfileStatusChanged(p, status)
	}

	return s.GetProfile(req.ID)
}

// DeleteProfile removes a profile together with its form.
func (s *DefaultProfileService) DeleteProfile(id string) error {
	if _, err := s.GetProfile(id); err != nil {
		return err
	}

	if err := s.Profiles.Delete(id); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	if err := s.Forms.DeleteByProfileID(id); err != nil {
		return fmt.Errorf("failed to delete form for profile %s: %w", id, err)
	}

	utils.GetLogger().Info("profile deleted", zap.String("profileID", id))
	return nil
}
