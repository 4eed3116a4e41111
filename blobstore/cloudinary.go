// Package blobstore implements domain.BlobStorage against Cloudinary.
package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/echosphere/echosphere-backend/domain"
)

type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorage(cloudinaryURL, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

// Cloudinary stores audio under its video resource type.
func resourceType(kind domain.MediaKind) string {
	if kind == domain.MediaKindAudio {
		return "video"
	}
	return "image"
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, kind domain.MediaKind) (*domain.BlobUpload, error) {
	params := uploader.UploadParams{
		PublicID:     uuid.NewString(),
		Folder:       s.folder,
		ResourceType: resourceType(kind),
	}
	resp, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &domain.BlobUpload{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID string, kind domain.MediaKind) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType(kind),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	return nil
}
