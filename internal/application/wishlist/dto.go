package wishlist

import (
	"time"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/estuaire/backend/internal/domain/wishlist"
	"github.com/google/uuid"
)

// AddWishlistItemRequest adds a product to the caller's wishlist
type AddWishlistItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// WishlistItemResponse is a wishlist entry with the product it points to
type WishlistItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Product   *ProductSummary `json:"product,omitempty"`
	AddedAt   time.Time       `json:"added_at"`
}

// ProductSummary is the slice of product data shown on wishlist entries
type ProductSummary struct {
	Name     string            `json:"name"`
	Price    valueobject.Money `json:"price"`
	Status   string            `json:"status"`
	OwnerID  uuid.UUID         `json:"owner_id"`
	Quantity int               `json:"quantity"`
}

// ToWishlistItemResponse converts a wishlist entry, attaching product
// data when the product still exists
func ToWishlistItemResponse(item *wishlist.WishlistItem, product *catalog.Product) WishlistItemResponse {
	resp := WishlistItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		AddedAt:   item.CreatedAt,
	}
	if product != nil {
		resp.Product = &ProductSummary{
			Name:     product.Name,
			Price:    product.Price,
			Status:   string(product.Status),
			OwnerID:  product.OwnerID,
			Quantity: product.Quantity,
		}
	}
	return resp
}
