// Package imagestore uploads restaurant images to an external hosted
// store and hands back a durable public URL. Nothing here serves image
// bytes itself.
package imagestore

import (
	"context"
	"fmt"
	"mime/multipart"

	"food-ordering-api/config"
)

// Asset is an uploaded image: the durable URL plus the provider-side
// identifier needed to delete it again.
type Asset struct {
	URL      string
	PublicID string
}

type Store interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// New builds the store selected by IMAGE_STORE_DRIVER.
func New(cfg *config.Config) (Store, error) {
	switch cfg.ImageStoreDriver {
	case "", "cloudinary":
		return newCloudinaryStore(cfg)
	case "s3":
		return newS3Store(cfg)
	default:
		return nil, fmt.Errorf("imagestore: unknown driver %q", cfg.ImageStoreDriver)
	}
}
