package models

import "time"

// Annotation is a free-text staff note attached to a profile or an account.
type Annotation struct {
	ID        string    `bson:"id" json:"id"`
	ProfileID string    `bson:"profileId,omitempty" json:"profileId,omitempty"`
	AccountID string    `bson:"accountId,omitempty" json:"accountId,omitempty"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
