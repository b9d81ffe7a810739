package persistence

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/order"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByNumber finds an order with its items by order number
func (r *GormOrderRepository) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("number = ?", number).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// ExistsByNumber checks if an order with the given number exists
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByCustomer finds a customer's orders with a total count
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	base := r.applyFilter(
		r.db.WithContext(ctx).Model(&order.Order{}).Where("customer_id = ?", customerID),
		filter,
	).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	query := applyOrder(base.Preload("Items"), filter, orderSortColumns, "created_at DESC")
	query = applyPagination(query, filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindByVendor finds orders containing at least one of the vendor's
// items. Items are not filtered here, callers scope them.
func (r *GormOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	sub := r.db.Model(&order.OrderItem{}).
		Select("order_id").
		Where("vendor_id = ?", vendorID)

	base := r.applyFilter(
		r.db.WithContext(ctx).Model(&order.Order{}).Where("id IN (?)", sub),
		filter,
	).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	query := applyOrder(base.Preload("Items"), filter, orderSortColumns, "created_at DESC")
	query = applyPagination(query, filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindItemsByVendor finds a vendor's sold item snapshots with a total count
func (r *GormOrderRepository) FindItemsByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.OrderItem, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Where("vendor_id = ?", vendorID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []order.OrderItem
	query := applyPagination(base.Order("created_at DESC"), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindItemByID finds a single order item snapshot by ID
func (r *GormOrderRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*order.OrderItem, error) {
	var item order.OrderItem
	if err := r.db.WithContext(ctx).
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// HasPurchased checks for a non-cancelled order of the customer that
// contains the product
func (r *GormOrderRepository) HasPurchased(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.customer_id = ? AND orders.status <> ? AND order_items.product_id = ?",
			customerID, order.OrderStatusCancelled, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an order and its item snapshots
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(o).Error; err != nil {
			return err
		}
		for i := range o.Items {
			if err := tx.Save(&o.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var orderSortColumns = map[string]bool{
	"created_at":   true,
	"total_amount": true,
	"status":       true,
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "number":
			query = query.Where("number = ?", value)
		}
	}
	return query
}

var _ order.OrderRepository = (*GormOrderRepository)(nil)
