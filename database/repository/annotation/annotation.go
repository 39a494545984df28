package annotationRepo

import (
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AnnotationRepository defines methods for annotation data access.
type AnnotationRepository interface {
	// GetByID retrieves an annotation by its unique ID, or nil if absent.
	GetByID(id string) (*models.Annotation, error)
	// GetByProfileID retrieves annotations for a profile, oldest first.
	GetByProfileID(profileID string) ([]models.Annotation, error)
	// GetByAccountID retrieves annotations for an account, oldest first.
	GetByAccountID(accountID string) ([]models.Annotation, error)
	// Create inserts a new annotation record.
	Create(annotation *models.Annotation) error
	// UpdateWithDocument applies a partial $set update to an annotation.
	UpdateWithDocument(id string, fields bson.M) error
	// Delete removes an annotation record by its ID.
	Delete(id string) error
}
