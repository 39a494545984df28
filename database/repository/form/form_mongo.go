package formRepo

import (
	"context"
	"fmt"
	"time"

	"visaflow/database"
	"visaflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFormRepo implements FormRepository using MongoDB.
type MongoFormRepo struct {
	coll *mongo.Collection
}

// NewMongoFormRepo creates a new instance of FormRepository using MongoDB.
func NewMongoFormRepo() FormRepository {
	coll := database.DB().Collection("forms")
	repo := &MongoFormRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFormRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "profileId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByProfileID retrieves the form tied to a profile.
func (r *MongoFormRepo) GetByProfileID(profileID string) (*models.Form, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var form models.Form
	if err := r.coll.FindOne(ctx, bson.M{"profileId": profileID}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch form for profile %s: %w", profileID, err)
	}
	return &form, nil
}

// Create inserts a new form document.
func (r *MongoFormRepo) Create(form *models.Form) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	form.CreatedAt = now
	form.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, form)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}
	return nil
}

// UpdateFields applies a $set update to the form tied to a profile.
func (r *MongoFormRepo) UpdateFields(profileID string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"profileId": profileID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update form for profile %s: %w", profileID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("form for profile %s not found", profileID)
	}
	return nil
}

// DeleteByProfileID removes the form tied to a profile.
func (r *MongoFormRepo) DeleteByProfileID(profileID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"profileId": profileID}); err != nil {
		return fmt.Errorf("failed to delete form for profile %s: %w", profileID, err)
	}
	return nil
}
