// models/profile.go
package models

import "time"

// Profile categories.
const (
	CategoryAmericanVisa = "american_visa"
	CategoryPassport     = "passport"
	CategoryETA          = "e_ta"
)

// Profile statuses.
const (
	StatusAwaiting = "awaiting"
	StatusFilling  = "filling"
	StatusFilled   = "filled"
	StatusEmitted  = "emitted"
)

// Profile is one visa/passport/ETA case owned by an Account. A Profile owns
// exactly one Form; the two are created together.
type Profile struct {
	ID        string `bson:"id" json:"id"`
	AccountID string `bson:"accountId" json:"accountId"`
	Name      string `bson:"name" json:"name"`
	Category  string `bson:"category" json:"category"`
	Status    string `bson:"status" json:"status"`

	// CurrentStep is the wizard step pointer, 1-based. Zero means the
	// client has not started filling.
	CurrentStep int `bson:"currentStep" json:"currentStep"`

	// Case-specific identifiers.
	DSNumber      string `bson:"dsNumber,omitempty" json:"dsNumber,omitempty"`
	Protocol      string `bson:"protocol,omitempty" json:"protocol,omitempty"`
	ProcessNumber string `bson:"processNumber,omitempty" json:"processNumber,omitempty"`
	VisaType      string `bson:"visaType,omitempty" json:"visaType,omitempty"`
	VisaClass     string `bson:"visaClass,omitempty" json:"visaClass,omitempty"`

	// InterviewDate must be set before the profile can be marked emitted.
	InterviewDate *time.Time `bson:"interviewDate,omitempty" json:"interviewDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
