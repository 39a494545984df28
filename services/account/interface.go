package account

import (
	accountRepo "visaflow/database/repository/account"
	"visaflow/models"
)

// AccountService defines business logic for account operations.
type AccountService interface {
	// Authenticate verifies credentials and returns the identity and a session token.
	Authenticate(email, password string) (*AuthResponse, error)
	// SignOut clears the stored session token hash.
	SignOut(accountID string) error

	// CreateClient creates a client account. Duplicate email or duplicate
	// new group name is a conflict.
	CreateClient(input NewAccount) (*models.Account, error)
	// CreateCollaborator creates a staff collaborator account.
	CreateCollaborator(input NewAccount) (*models.Account, error)
	// GetAccountByID retrieves an account by its unique ID.
	GetAccountByID(id string) (*models.Account, error)
	// GetClients retrieves all client accounts.
	GetClients() ([]models.Account, error)
	// GetCollaborators retrieves all collaborator accounts.
	GetCollaborators() ([]models.Account, error)
	// UpdateAccount applies a partial update; empty fields are left unchanged.
	UpdateAccount(req AccountUpdateRequest) (*models.Account, error)
	// ResetPassword replaces an account's password.
	ResetPassword(accountID, newPassword string) error
	// DeleteCollaborator removes a collaborator account. Client accounts
	// are never hard-deleted.
	DeleteCollaborator(id string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}

// NewAccount carries the input of an account-creation operation.
type NewAccount struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Cel      string `json:"cel"`
	Address  string `json:"address"`

	ScheduleAccount  string `json:"scheduleAccount"`
	SchedulePassword string `json:"schedulePassword"`

	Budget     float64 `json:"budget"`
	BudgetPaid bool    `json:"budgetPaid"`

	// Group joins the account to an existing group label. NewGroup
	// registers a new label instead; the name must not be taken.
	Group    string `json:"group"`
	NewGroup string `json:"newGroup"`
}

// AccountUpdateRequest carries a partial account update. Nil/empty fields
// are left unchanged.
type AccountUpdateRequest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Cel              string   `json:"cel"`
	Address          string   `json:"address"`
	ScheduleAccount  string   `json:"scheduleAccount"`
	SchedulePassword string   `json:"schedulePassword"`
	Budget           *float64 `json:"budget"`
	BudgetPaid       *bool    `json:"budgetPaid"`
	Group            string   `json:"group"`
}

// AuthResponse contains the account's identity and session token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
