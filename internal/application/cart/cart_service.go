package cart

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/cart"
	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService manages a user's shopping cart. Stock checks here are
// advisory, the authoritative check happens under row locks during
// order placement.
type CartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.CartRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart, creating an empty one on first use
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

// AddItem merges the product into the cart. The stock check runs
// against the merged line quantity, not the increment, so repeated
// adds cannot creep past availability.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	// An inactive listing reads the same as a missing one.
	if !product.IsActive() {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found or inactive")
	}
	if product.IsOwnedBy(userID) {
		return nil, shared.NewDomainError("INVALID_INPUT", "You cannot buy your own product")
	}

	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	mergedQty := req.Quantity
	if existing := c.FindItemByProduct(req.ProductID); existing != nil {
		mergedQty += existing.Quantity
	}
	if !product.IsAvailable(mergedQty) {
		return nil, shared.NewInsufficientStockError(product.ID, product.Name, mergedQty, product.Quantity)
	}

	if _, err := c.AddItem(req.ProductID, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

// UpdateItem replaces a line quantity after re-checking availability
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := c.UpdateItem(itemID, req.Quantity)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable(req.Quantity) {
		return nil, shared.NewInsufficientStockError(product.ID, product.Name, req.Quantity, product.Quantity)
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

// RemoveItem deletes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.RemoveItem(itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, c)
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	c.Clear()
	if err := s.cartRepo.DeleteItems(ctx, c.ID); err != nil {
		return err
	}
	return s.cartRepo.Save(ctx, c)
}

func (s *CartService) getOrCreate(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return c, nil
	}
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != shared.ErrNotFound.Code {
		return nil, err
	}

	c, err = cart.NewCart(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// toResponse derives display totals from live product prices
func (s *CartService) toResponse(ctx context.Context, c *cart.Cart) (*CartResponse, error) {
	resp := &CartResponse{
		ID:          c.ID,
		Items:       make([]CartItemResponse, 0, len(c.Items)),
		TotalAmount: decimal.Zero,
		Currency:    string(valueobject.DefaultCurrency),
		UpdatedAt:   c.UpdatedAt,
	}

	for i := range c.Items {
		item := &c.Items[i]
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			// Listing deleted after it was carted; surface the line
			// without price so the client can drop it.
			resp.Items = append(resp.Items, CartItemResponse{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: decimal.Zero,
				LineTotal: decimal.Zero,
			})
			continue
		}
		lineTotal := product.Price.MultiplyByInt(int64(item.Quantity))
		resp.Items = append(resp.Items, CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			UnitPrice:   product.Price.Amount(),
			Quantity:    item.Quantity,
			LineTotal:   lineTotal.Amount(),
			Available:   product.IsActive() && product.IsAvailable(item.Quantity),
		})
		resp.TotalAmount = resp.TotalAmount.Add(lineTotal.Amount())
		resp.TotalQuantity += item.Quantity
	}
	return resp, nil
}
