package models

import "time"

// Banner is a marketing content entity, unrelated to the wizard.
type Banner struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Text          string    `bson:"text,omitempty" json:"text,omitempty"`
	Link          string    `bson:"link,omitempty" json:"link,omitempty"`
	ImagePublicID string    `bson:"imagePublicId,omitempty" json:"imagePublicId,omitempty"`
	ImageURL      string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
