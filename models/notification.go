package models

import "time"

// Notification is generated on profile status transitions for staff visibility.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	ProfileID string    `bson:"profileId" json:"profileId"`
	Message   string    `bson:"message" json:"message"`
	Viewed    bool      `bson:"viewed" json:"viewed"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
