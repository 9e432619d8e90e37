// file: service/uploader.go

package service

import (
	"context"
	"fmt"
	"io"
	"portfolio-api/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadedImage is the provider's view of a stored image: a public URL to
// serve and an opaque id needed to destroy the asset later.
type UploadedImage struct {
	URL      string
	PublicID string
}

// IImageUploader defines the contract for the image-hosting relay.
type IImageUploader interface {
	Upload(ctx context.Context, file io.Reader) (*UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryUploader implements IImageUploader on top of the Cloudinary API.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryUploader{client: client, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader) (*UploadedImage, error) {
	result, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to upload image to Cloudinary")
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return &UploadedImage{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	_, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		logger.Log.WithError(err).WithField("public_id", publicID).Error("Failed to destroy image on Cloudinary")
		return fmt.Errorf("failed to destroy image: %w", err)
	}
	return nil
}
