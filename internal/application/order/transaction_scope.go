package order

import (
	"context"

	"github.com/estuaire/backend/internal/domain/cart"
	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/notification"
	"github.com/estuaire/backend/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories
// touched by order placement and cancellation. Everything executed in
// the scope commits or rolls back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error the transaction is rolled back,
	// otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories bound to the
// current transaction. Product access inside the scope supports
// FindByIDForUpdate, which is the stock serialization point.
type TransactionalRepositories interface {
	Orders() order.OrderRepository
	Products() catalog.ProductRepository
	Carts() cart.CartRepository
	Notifications() notification.NotificationRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Used by tests that assert service logic rather than atomicity.
type NoOpTransactionScope struct {
	orderRepo        order.OrderRepository
	productRepo      catalog.ProductRepository
	cartRepo         cart.CartRepository
	notificationRepo notification.NotificationRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	orderRepo order.OrderRepository,
	productRepo catalog.ProductRepository,
	cartRepo cart.CartRepository,
	notificationRepo notification.NotificationRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		cartRepo:         cartRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() order.OrderRepository { return s.orderRepo }

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.productRepo }

// Carts returns the cart repository
func (s *NoOpTransactionScope) Carts() cart.CartRepository { return s.cartRepo }

// Notifications returns the notification repository
func (s *NoOpTransactionScope) Notifications() notification.NotificationRepository {
	return s.notificationRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
