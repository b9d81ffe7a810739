package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines persistence operations for carts
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	// DeleteItems removes the given cart's lines; used when an order
	// placement empties the cart inside the placement transaction.
	DeleteItems(ctx context.Context, cartID uuid.UUID) error
}
