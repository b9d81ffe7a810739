package review

import (
	"context"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Review, int64, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, filter shared.Filter) ([]Review, int64, error)
	// FindAllByVendor loads the complete review set for a vendor, used
	// by the rating recompute.
	FindAllByVendor(ctx context.Context, vendorID uuid.UUID) ([]Review, error)
	FindAllByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)
	FindByAuthorAndProduct(ctx context.Context, authorID, productID uuid.UUID) (*Review, error)
	Save(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorRatingRepository defines persistence operations for vendor rating aggregates
type VendorRatingRepository interface {
	FindByVendor(ctx context.Context, vendorID uuid.UUID) (*VendorRating, error)
	Save(ctx context.Context, rating *VendorRating) error
}
