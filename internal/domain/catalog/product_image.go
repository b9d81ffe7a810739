package catalog

import (
	"strings"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductImage is a stored image attached to a product listing.
// StorageKey is the opaque object key; URLs are resolved by the
// storage collaborator at read time.
type ProductImage struct {
	shared.BaseEntity
	ProductID  uuid.UUID
	StorageKey string
	FileName   string
	MimeType   string
	SizeBytes  int64
	IsPrimary  bool
	SortOrder  int
}

// NewProductImage creates an image record for a product
func NewProductImage(productID uuid.UUID, storageKey, fileName, mimeType string, sizeBytes int64) (*ProductImage, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if sizeBytes <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Image size must be positive")
	}
	return &ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		StorageKey: storageKey,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
	}, nil
}
