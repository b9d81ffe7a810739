package order

import (
	"context"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByNumber(ctx context.Context, number string) (*Order, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, int64, error)
	// FindByVendor returns orders containing at least one item owned by
	// the vendor; items are not filtered here, callers scope them.
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Order, int64, error)
	FindItemsByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]OrderItem, int64, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*OrderItem, error)
	// HasPurchased reports whether the customer has a non-cancelled
	// order containing the product.
	HasPurchased(ctx context.Context, customerID, productID uuid.UUID) (bool, error)
	Save(ctx context.Context, o *Order) error
}
