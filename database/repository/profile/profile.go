package profileRepo

import (
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByID retrieves a profile by its unique ID, or nil if absent.
	GetByID(id string) (*models.Profile, error)
	// GetByAccountID retrieves all profiles owned by an account, oldest first.
	GetByAccountID(accountID string) ([]models.Profile, error)
	// Create inserts a new profile record.
	Create(profile *models.Profile) error
	// UpdateWithDocument applies a partial $set update to a profile.
	UpdateWithDocument(id string, fields bson.M) error
	// Delete removes a profile record by its ID.
	Delete(id string) error
}
