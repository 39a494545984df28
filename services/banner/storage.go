package banner

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// bannerFolder is the remote folder banner images are uploaded into.
const bannerFolder = "banners"

// ImageStorage abstracts the image hosting backend.
type ImageStorage interface {
	// Upload stores an image and returns its permanent identifier and
	// public URL.
	Upload(ctx context.Context, file io.Reader) (publicID, url string, err error)
	// Destroy removes a previously uploaded image.
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryStorage is the production ImageStorage backed by Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a CloudinaryStorage around an initialized client.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

// Upload stores an image in the banner folder.
func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: bannerFolder})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload banner image: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("upload returned no public ID")
	}
	return result.PublicID, result.SecureURL, nil
}

// Destroy removes a previously uploaded image.
func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete banner image %s: %w", publicID, err)
	}
	return nil
}
