package storage

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/estuaire/backend/internal/application/catalog"
)

var errKeyRequired = errors.New("storage key is required")

// StubObjectStorage serves deterministic fake URLs for local
// development when no object store is configured. Product image links
// resolve under BaseURL but point at nothing.
type StubObjectStorage struct {
	BaseURL string
}

// NewStubObjectStorage creates a stub rooted at storage.example.com
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{BaseURL: "https://storage.example.com"}
}

var _ catalogapp.ObjectStorageService = (*StubObjectStorage)(nil)

// GenerateUploadURL returns a fake presigned upload URL
func (s *StubObjectStorage) GenerateUploadURL(
	ctx context.Context,
	storageKey, contentType string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	return s.signedURL("upload", storageKey, expiresIn)
}

// GenerateDownloadURL returns a fake presigned download URL
func (s *StubObjectStorage) GenerateDownloadURL(
	ctx context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	return s.signedURL("download", storageKey, expiresIn)
}

// DeleteObject succeeds without touching anything
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errKeyRequired
	}
	return nil
}

// ObjectExists reports every key as present so the image confirmation
// flow works without a real backend
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errKeyRequired
	}
	return true, nil
}

func (s *StubObjectStorage) signedURL(op, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errKeyRequired
	}
	expiresAt := time.Now().Add(expiresIn)
	url := s.BaseURL + "/" + op + "/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339)
	return url, expiresAt, nil
}
