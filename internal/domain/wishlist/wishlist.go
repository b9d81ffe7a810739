package wishlist

import (
	"context"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WishlistItem marks a product a user wants to keep an eye on.
// The (user, product) pair is unique.
type WishlistItem struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_wishlist_user_product"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_wishlist_user_product"`
}

// NewWishlistItem creates a wishlist entry
func NewWishlistItem(userID, productID uuid.UUID) (*WishlistItem, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User and product are required")
	}
	return &WishlistItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
	}, nil
}

// WishlistRepository defines persistence operations for wishlist entries
type WishlistRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]WishlistItem, error)
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Save(ctx context.Context, item *WishlistItem) error
	DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error
}
