package catalog

import (
	"context"
	"time"
)

// ObjectStorageService abstracts the object store holding product images.
// Uploads go through presigned URLs so image bytes never pass through
// the API server.
type ObjectStorageService interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (url string, expiresAt time.Time, err error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (url string, expiresAt time.Time, err error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
