package annotationRepo

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

// MongoAnnotationRepo implements AnnotationRepository using MongoDB.
type MongoAnnotationRepo struct {
	coll *mongo.Collection
}

// NewMongoAnnotationRepo creates a new instance of AnnotationRepository using MongoDB.
func NewMongoAnnotationRepo() AnnotationRepository {
	coll := database.DB().Collection("annotations")
	repo := &MongoAnnotationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAnnotationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "profileId", Value: 1}}},
		{Keys: bson.D{{Key: "accountId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an annotation by its unique ID.
func (r *MongoAnnotationRepo) GetByID(id string) (*models.Annotation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var annotation models.Annotation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&annotation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch annotation with id %s: %w", id, err)
	}
	return &annotation, nil
}

func (r *MongoAnnotationRepo) findAll(filter bson.M) ([]models.Annotation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve annotations: %w", err)
	}
	defer cursor.Close(ctx)

	var annotations []models.Annotation
	for cursor.Next(ctx) {
		var a models.Annotation
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode annotation: %w", err)
		}
		annotations = append(annotations, a)
	}
	return annotations, nil
}

// GetByProfileID retrieves annotations for a profile, oldest first.
func (r *MongoAnnotationRepo) GetByProfileID(profileID string) ([]models.Annotation, error) {
	return r.findAll(bson.M{"profileId": profileID})
}

// GetByAccountID retrieves annotations for an account, oldest first.
func (r *MongoAnnotationRepo) GetByAccountID(accountID string) ([]models.Annotation, error) {
	return r.findAll(bson.M{"accountId": accountID})
}

// Create inserts a new annotation document.
func (r *MongoAnnotationRepo) Create(annotation *models.Annotation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	annotation.CreatedAt = now
	annotation.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, annotation)
	if err != nil {
		return fmt.Errorf("failed to create annotation: %w", err)
	}
	return nil
}

// UpdateWithDocument applies a partial $set update to an annotation.
func (r *MongoAnnotationRepo) UpdateWithDocument(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update annotation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("annotation with id %s not found", id)
	}
	return nil
}

// Delete removes an annotation document by its ID.
func (r *MongoAnnotationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete annotation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("annotation with id %s not found", id)
	}
	return nil
}
