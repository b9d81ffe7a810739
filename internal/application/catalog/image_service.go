package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	uploadURLTTL   = 15 * time.Minute
	downloadURLTTL = time.Hour
	maxImageSize   = 10 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageService manages product image uploads through presigned URLs
type ImageService struct {
	productRepo catalog.ProductRepository
	imageRepo   catalog.ProductImageRepository
	storage     ObjectStorageService
}

// NewImageService creates a new ImageService
func NewImageService(productRepo catalog.ProductRepository, imageRepo catalog.ProductImageRepository, storage ObjectStorageService) *ImageService {
	return &ImageService{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		storage:     storage,
	}
}

// RequestUpload validates the upload and returns a presigned PUT URL
func (s *ImageService) RequestUpload(ctx context.Context, vendorID, productID uuid.UUID, req RequestImageUploadRequest) (*ImageUploadResponse, error) {
	if !allowedImageTypes[req.MimeType] {
		return nil, shared.NewDomainError("INVALID_INPUT", "Only JPEG, PNG and WebP images are accepted")
	}
	if req.Size > maxImageSize {
		return nil, shared.NewDomainError("INVALID_INPUT", "Image exceeds the 10MB limit")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsOwnedBy(vendorID) {
		return nil, shared.ErrForbidden
	}

	storageKey := buildStorageKey(productID, req.FileName)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.MimeType, uploadURLTTL)
	if err != nil {
		return nil, err
	}
	return &ImageUploadResponse{
		StorageKey: storageKey,
		UploadURL:  url,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmUpload records the image once the object exists in storage
func (s *ImageService) ConfirmUpload(ctx context.Context, vendorID, productID uuid.UUID, req ConfirmImageUploadRequest) (*ImageResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsOwnedBy(vendorID) {
		return nil, shared.ErrForbidden
	}

	exists, err := s.storage.ObjectExists(ctx, req.StorageKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("INVALID_INPUT", "Uploaded object not found in storage")
	}

	image, err := catalog.NewProductImage(productID, req.StorageKey, req.FileName, req.MimeType, req.Size)
	if err != nil {
		return nil, err
	}

	existing, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		image.IsPrimary = true
	}
	image.SortOrder = len(existing)

	if err := s.imageRepo.Save(ctx, image); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, image)
}

// ListForProduct returns the product's images with resolved URLs
func (s *ImageService) ListForProduct(ctx context.Context, productID uuid.UUID) ([]ImageResponse, error) {
	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		resp, err := s.toResponse(ctx, &images[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Delete removes an image record and its stored object
func (s *ImageService) Delete(ctx context.Context, vendorID, imageID uuid.UUID) error {
	image, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		return err
	}
	product, err := s.productRepo.FindByID(ctx, image.ProductID)
	if err != nil {
		return err
	}
	if !product.IsOwnedBy(vendorID) {
		return shared.ErrForbidden
	}
	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}
	return s.storage.DeleteObject(ctx, image.StorageKey)
}

func (s *ImageService) toResponse(ctx context.Context, image *catalog.ProductImage) (*ImageResponse, error) {
	url, _, err := s.storage.GenerateDownloadURL(ctx, image.StorageKey, downloadURLTTL)
	if err != nil {
		return nil, err
	}
	return &ImageResponse{
		ID:        image.ID,
		URL:       url,
		FileName:  image.FileName,
		MimeType:  image.MimeType,
		IsPrimary: image.IsPrimary,
	}, nil
}

func buildStorageKey(productID uuid.UUID, fileName string) string {
	ext := ""
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		ext = strings.ToLower(fileName[i:])
	}
	return fmt.Sprintf("products/%s/%s%s", productID, uuid.New(), ext)
}
