package persistence

import (
	"context"

	apporder "github.com/estuaire/backend/internal/application/order"
	"github.com/estuaire/backend/internal/domain/cart"
	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/notification"
	"github.com/estuaire/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormOrderTransactionScope implements the order TransactionScope using
// GORM transactions. Placement and cancellation run their multi-table
// writes through it so they commit or roll back as one unit.
type GormOrderTransactionScope struct {
	db *gorm.DB
}

// NewGormOrderTransactionScope creates a new GormOrderTransactionScope
func NewGormOrderTransactionScope(db *gorm.DB) *GormOrderTransactionScope {
	return &GormOrderTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormOrderTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormOrderRepositories{tx: tx})
	})
}

type gormOrderRepositories struct {
	tx *gorm.DB
}

// Orders returns the order repository scoped to the current transaction
func (r *gormOrderRepositories) Orders() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Products returns the product repository scoped to the current transaction
func (r *gormOrderRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Carts returns the cart repository scoped to the current transaction
func (r *gormOrderRepositories) Carts() cart.CartRepository {
	return NewGormCartRepository(r.tx)
}

// Notifications returns the notification repository scoped to the current transaction
func (r *gormOrderRepositories) Notifications() notification.NotificationRepository {
	return NewGormNotificationRepository(r.tx)
}

var _ apporder.TransactionScope = (*GormOrderTransactionScope)(nil)
var _ apporder.TransactionalRepositories = (*gormOrderRepositories)(nil)
