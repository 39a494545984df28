package bannerRepo

import (
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BannerRepository defines methods for banner data access.
type BannerRepository interface {
	// GetByID retrieves a banner by its unique ID, or nil if absent.
	GetByID(id string) (*models.Banner, error)
	// GetAll retrieves all banners, newest first.
	GetAll() ([]models.Banner, error)
	// Create inserts a new banner record.
	Create(banner *models.Banner) error
	// UpdateWithDocument applies a partial $set update to a banner.
	UpdateWithDocument(id string, fields bson.M) error
	// Delete removes a banner record by its ID.
	Delete(id string) error
}
