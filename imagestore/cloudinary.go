package imagestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"food-ordering-api/config"
)

type cloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func newCloudinaryStore(cfg *config.Config) (*cloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("imagestore: cloudinary init: %w", err)
	}
	return &cloudinaryStore{cld: cld}, nil
}

// Upload submits the file as a base64 data URI and returns the
// service-assigned URL.
func (s *cloudinaryStore) Upload(ctx context.Context, file *multipart.FileHeader) (Asset, error) {
	f, err := file.Open()
	if err != nil {
		return Asset{}, fmt.Errorf("imagestore: open upload: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return Asset{}, fmt.Errorf("imagestore: read upload: %w", err)
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	dataURI := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)

	resp, err := s.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{})
	if err != nil {
		return Asset{}, fmt.Errorf("imagestore: cloudinary upload: %w", err)
	}
	return Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (s *cloudinaryStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("imagestore: cloudinary destroy %s: %w", publicID, err)
	}
	return nil
}
