package bannerRepo

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

// MongoBannerRepo implements BannerRepository using MongoDB.
type MongoBannerRepo struct {
	coll *mongo.Collection
}

// NewMongoBannerRepo creates a new instance of BannerRepository using MongoDB.
func NewMongoBannerRepo() BannerRepository {
	coll := database.DB().Collection("banners")
	repo := &MongoBannerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBannerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a banner by its unique ID.
func (r *MongoBannerRepo) GetByID(id string) (*models.Banner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var banner models.Banner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&banner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch banner with id %s: %w", id, err)
	}
	return &banner, nil
}

// GetAll retrieves all banners, newest first.
func (r *MongoBannerRepo) GetAll() ([]models.Banner, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve banners: %w", err)
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	for cursor.Next(ctx) {
		var b models.Banner
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode banner: %w", err)
		}
		banners = append(banners, b)
	}
	return banners, nil
}

// Create inserts a new banner document.
func (r *MongoBannerRepo) Create(banner *models.Banner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, banner)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// UpdateWithDocument applies a partial $set update to a banner.
func (r *MongoBannerRepo) UpdateWithDocument(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update banner with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("banner with id %s not found", id)
	}
	return nil
}

// Delete removes a banner document by its ID.
func (r *MongoBannerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete banner with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("banner with id %s not found", id)
	}
	return nil
}
