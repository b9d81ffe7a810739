package cart

import (
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Cart is the aggregate root for a customer's shopping cart.
// One cart per user; items reference live products and hold no
// price snapshot, prices are read from the catalog at display
// and order-placement time.
type Cart struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Items  []CartItem `gorm:"foreignKey:CartID"`
}

// CartItem is a line in a cart
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             make([]CartItem, 0),
	}, nil
}

// AddItem merges the quantity into an existing line or appends a new
// one. It returns the resulting line quantity so the caller can check
// stock against the merged total, not the increment.
func (c *Cart) AddItem(productID uuid.UUID, quantity int) (int, error) {
	if productID == uuid.Nil {
		return 0, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return 0, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.Items[i].UpdatedAt = time.Now()
			c.touch()
			return c.Items[i].Quantity, nil
		}
	}

	c.Items = append(c.Items, CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     c.ID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	c.touch()
	return quantity, nil
}

// UpdateItem replaces the quantity of an existing line
func (c *Cart) UpdateItem(itemID uuid.UUID, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			c.Items[i].UpdatedAt = time.Now()
			c.touch()
			return &c.Items[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// RemoveItem deletes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// FindItemByProduct returns the line referencing the given product, if any
func (c *Cart) FindItemByProduct(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
	c.touch()
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity is the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
