package catalog

import (
	"context"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]
	// FindByIDForUpdate loads the product with a row lock so stock
	// mutations inside the calling transaction serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Product, int64, error)
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, int64, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	shared.Repository[Category]
	FindActive(ctx context.Context) ([]Category, error)
	FindSubCategories(ctx context.Context, categoryID uuid.UUID) ([]SubCategory, error)
	SaveSubCategory(ctx context.Context, sub *SubCategory) error
}

// ProductImageRepository defines persistence operations for product images
type ProductImageRepository interface {
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductImage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductImage, error)
	Save(ctx context.Context, image *ProductImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
