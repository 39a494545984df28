package banner

import (
	"context"
	"fmt"
	"io"

	bannerRepo "visaflow/database/repository/banner"
	"visaflow/models"
	"visaflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// BannerService defines business logic for marketing banners.
type BannerService interface {
	// GetBanners retrieves all banners, newest first.
	GetBanners() ([]models.Banner, error)
	// CreateBanner creates a banner, uploading its image when provided.
	CreateBanner(ctx context.Context, input NewBanner) (*models.Banner, error)
	// UpdateBanner applies a partial update; a new image replaces the old one.
	UpdateBanner(ctx context.Context, req BannerUpdateRequest) (*models.Banner, error)
	// DeleteBanner removes a banner and its hosted image.
	DeleteBanner(ctx context.Context, id string) error
}

// DefaultBannerService is the production implementation.
type DefaultBannerService struct {
	Repo    bannerRepo.BannerRepository
	Storage ImageStorage
}

// NewBanner carries the input of a banner-creation operation.
type NewBanner struct {
	Title string
	Text  string
	Link  string
	Image io.Reader
}

// BannerUpdateRequest carries a partial banner update.
type BannerUpdateRequest struct {
	ID    string
	Title string
	Text  string
	Link  string
	Image io.Reader
}

// CreateBanner creates a banner, uploading its image when provided.
func (s *DefaultBannerService) CreateBanner(ctx context.Context, input NewBanner) (*models.Banner, error) {
	if input.Title == "" {
		return nil, utils.BadRequestError{Message: "banner title is required"}
	}

	b := &models.Banner{
		ID:    uuid.NewString(),
		Title: input.Title,
		Text:  input.Text,
		Link:  input.Link,
	}

	if input.Image != nil {
		publicID, url, err := s.Storage.Upload(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		b.ImagePublicID = publicID
		b.ImageURL = url
	}

	if err := s.Repo.Create(b); err != nil {
		// The record never existed; don't leave the image orphaned.
		if b.ImagePublicID != "" {
			if derr := s.Storage.Destroy(ctx, b.ImagePublicID); derr != nil {
				utils.GetLogger().Error("failed to clean up banner image",
					zap.String("publicID", b.ImagePublicID), zap.Error(derr))
			}
		}
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return b, nil
}

// GetBanners retrieves all banners, newest first.
func (s *DefaultBannerService) GetBanners() ([]models.Banner, error) {
	return s.Repo.GetAll()
}

// UpdateBanner applies a partial update; a new image replaces the old one.
func (s *DefaultBannerService) UpdateBanner(ctx context.Context, req BannerUpdateRequest) (*models.Banner, error) {
	b, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch banner %s: %w", req.ID, err)
	}
	if b == nil {
		return nil, utils.NotFoundError{Message: "banner not found"}
	}

	updateFields := bson.M{}
	if req.Title != "" {
		updateFields["title"] = req.Title
	}
	if req.Text != "" {
		updateFields["text"] = req.Text
	}
	if req.Link != "" {
		updateFields["link"] = req.Link
	}

	oldPublicID := ""
	if req.Image != nil {
		publicID, url, err := s.Storage.Upload(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		oldPublicID = b.ImagePublicID
		updateFields["imagePublicId"] = publicID
		updateFields["imageUrl"] = url
	}

	if len(updateFields) == 0 {
		return nil, utils.BadRequestError{Message: "no updatable fields provided"}
	}

	if err := s.Repo.UpdateWithDocument(req.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update banner %s: %w", req.ID, err)
	}

	if oldPublicID != "" {
		if err := s.Storage.Destroy(ctx, oldPublicID); err != nil {
			utils.GetLogger().Error("failed to delete replaced banner image",
				zap.String("publicID", oldPublicID), zap.Error(err))
		}
	}

	updated, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch banner %s: %w", req.ID, err)
	}
	return updated, nil
}

// DeleteBanner removes a banner and its hosted image.
func (s *DefaultBannerService) DeleteBanner(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch banner %s: %w", id, err)
	}
	if b == nil {
		return utils.NotFoundError{Message: "banner not found"}
	}

	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete banner %s: %w", id, err)
	}

	if b.ImagePublicID != "" {
		if err := s.Storage.Destroy(ctx, b.ImagePublicID); err != nil {
			utils.GetLogger().Error("failed to delete banner image",
				zap.String("publicID", b.ImagePublicID), zap.Error(err))
		}
	}
	return nil
}
