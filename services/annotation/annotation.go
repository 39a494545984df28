package annotation

import (
	"fmt"

	annotationRepo "visaflow/database/repository/annotation"
	"visaflow/models"
	"visaflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// AnnotationService defines business logic for staff notes.
type AnnotationService interface {
	// Create attaches a note to a profile or an account.
	Create(input NewAnnotation) (*models.Annotation, error)
	// Update replaces the text of a note.
	Update(id, text string) (*models.Annotation, error)
	// Delete removes a note.
	Delete(id string) error
	// GetByProfile retrieves notes for a profile, oldest first.
	GetByProfile(profileID string) ([]models.Annotation, error)
	// GetByAccount retrieves notes for an account, oldest first.
	GetByAccount(accountID string) ([]models.Annotation, error)
}

// DefaultAnnotationService is the production implementation.
type DefaultAnnotationService struct {
	Repo annotationRepo.AnnotationRepository
}

// NewAnnotation carries the input of a note-creation operation. Exactly
// one of ProfileID and AccountID must be set.
type NewAnnotation struct {
	ProfileID string `json:"profileId"`
	AccountID string `json:"accountId"`
	AuthorID  string `json:"-"`
	Text      string `json:"text" binding:"required"`
}

// Create attaches a note to a profile or an account.
func (s *DefaultAnnotationService) Create(input NewAnnotation) (*models.Annotation, error) {
	if (input.ProfileID == "") == (input.AccountID == "") {
		return nil, utils.BadRequestError{Message: "exactly one of profileId and accountId is required"}
	}

	a := &models.Annotation{
		ID:        uuid.NewString(),
		ProfileID: input.ProfileID,
		AccountID: input.AccountID,
		AuthorID:  input.AuthorID,
		Text:      input.Text,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, fmt.Errorf("failed to create annotation: %w", err)
	}
	return a, nil
}

// Update replaces the text of a note.
func (s *DefaultAnnotationService) Update(id, text string) (*models.Annotation, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch annotation %s: %w", id, err)
	}
	if a == nil {
		return nil, utils.NotFoundError{Message: "annotation not found"}
	}
	if text == "" {
		return nil, utils.BadRequestError{Message: "annotation text is required"}
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"text": text}); err != nil {
		return nil, fmt.Errorf("failed to update annotation %s: %w", id, err)
	}
	a.Text = text
	return a, nil
}

// Delete removes a note.
func (s *DefaultAnnotationService) Delete(id string) error {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch annotation %s: %w", id, err)
	}
	if a == nil {
		return utils.NotFoundError{Message: "annotation not found"}
	}
	return s.Repo.Delete(id)
}

// GetByProfile retrieves notes for a profile, oldest first.
func (s *DefaultAnnotationService) GetByProfile(profileID string) ([]models.Annotation, error) {
	return s.Repo.GetByProfileID(profileID)
}

// GetByAccount retrieves notes for an account, oldest first.
func (s *DefaultAnnotationService) GetByAccount(accountID string) ([]models.Annotation, error) {
	return s.Repo.GetByAccountID(accountID)
}
