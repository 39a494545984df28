// models/account.go
package models

import "time"

// Account roles. Collaborators and admins are staff; clients fill wizards.
const (
	RoleClient       = "client"
	RoleCollaborator = "collaborator"
	RoleAdmin        = "admin"
)

// Account represents a client or staff identity.
type Account struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         string `bson:"role" json:"role"`
	Cel          string `bson:"cel,omitempty" json:"cel,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`

	// Scheduling sub-account credentials (interview scheduling portal).
	ScheduleAccount  string `bson:"scheduleAccount,omitempty" json:"scheduleAccount,omitempty"`
	SchedulePassword string `bson:"schedulePassword,omitempty" json:"schedulePassword,omitempty"`

	// Billing.
	Budget     float64 `bson:"budget,omitempty" json:"budget,omitempty"`
	BudgetPaid bool    `bson:"budgetPaid" json:"budgetPaid"`

	// Group label for batch travel groups. Group names are unique.
	Group string `bson:"group,omitempty" json:"group,omitempty"`

	// SHA-256 hash of the active session token. Empty when signed out.
	SessionTokenHash string `bson:"sessionTokenHash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StaffRole reports whether the role belongs to staff.
func StaffRole(role string) bool {
	return role == RoleAdmin || role == RoleCollaborator
}
