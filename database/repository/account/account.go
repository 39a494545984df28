package accountRepo

import (
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address, or nil if absent.
	GetByEmail(email string) (*models.Account, error)
	// GetAllByRole retrieves all accounts holding the given role.
	GetAllByRole(role string) ([]models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// UpdateWithDocument applies a partial $set update to an account.
	UpdateWithDocument(id string, fields bson.M) error
	// Delete removes an account record by its ID.
	Delete(id string) error
	// GroupExists reports whether any account already carries the group label.
	GroupExists(group string) (bool, error)
}
