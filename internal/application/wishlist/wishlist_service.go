package wishlist

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/wishlist"
	"github.com/google/uuid"
)

// WishlistService manages per-user wishlists
type WishlistService struct {
	wishlistRepo wishlist.WishlistRepository
	productRepo  catalog.ProductRepository
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistRepo wishlist.WishlistRepository, productRepo catalog.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Add puts a product on the caller's wishlist. Vendors cannot wishlist
// their own products.
func (s *WishlistService) Add(ctx context.Context, userID uuid.UUID, req AddWishlistItemRequest) (*WishlistItemResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.IsOwnedBy(userID) {
		return nil, shared.NewDomainError("FORBIDDEN", "You cannot wishlist your own product")
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product is already in your wishlist")
	}

	item, err := wishlist.NewWishlistItem(userID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if err := s.wishlistRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToWishlistItemResponse(item, product)
	return &resp, nil
}

// Remove deletes a product from the caller's wishlist
func (s *WishlistService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID)
}

// List returns the caller's wishlist with current product data.
// Entries whose product was deleted are returned without it.
func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]WishlistItemResponse, error) {
	items, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]WishlistItemResponse, 0, len(items))
	for i := range items {
		product, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code {
				out = append(out, ToWishlistItemResponse(&items[i], nil))
				continue
			}
			return nil, err
		}
		out = append(out, ToWishlistItemResponse(&items[i], product))
	}
	return out, nil
}

// Contains reports whether the product is on the caller's wishlist
func (s *WishlistService) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return s.wishlistRepo.Exists(ctx, userID, productID)
}
