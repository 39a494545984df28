package formRepo

import (
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FormRepository defines methods for form data access.
type FormRepository interface {
	// GetByProfileID retrieves the form tied to a profile, or nil if absent.
	GetByProfileID(profileID string) (*models.Form, error)
	// Create inserts a new form record.
	Create(form *models.Form) error
	// UpdateFields applies a $set update to the form tied to a profile. Keys
	// are dotted paths into the step sections; list values replace the
	// stored list wholesale.
	UpdateFields(profileID string, fields bson.M) error
	// DeleteByProfileID removes the form tied to a profile.
	DeleteByProfileID(profileID string) error
}
