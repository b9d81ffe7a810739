package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatuses lists every accepted order status
var ValidOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether s is a known order status
func IsValidOrderStatus(s OrderStatus) bool {
	for _, v := range ValidOrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// InvalidStatusError returns an INVALID_INPUT error naming the valid set
func InvalidStatusError(s OrderStatus) error {
	names := make([]string, len(ValidOrderStatuses))
	for i, v := range ValidOrderStatuses {
		names[i] = string(v)
	}
	return shared.NewDomainError("INVALID_INPUT",
		fmt.Sprintf("invalid status %q, valid statuses: %s", s, strings.Join(names, ", ")))
}

// Order is the aggregate root for a placed order. Item rows are
// immutable snapshots taken at placement time; the order total is
// the sum of those snapshots.
type Order struct {
	shared.BaseAggregateRoot
	Number             string
	CustomerID         uuid.UUID
	Status             OrderStatus
	TotalAmount        valueobject.Money `gorm:"type:decimal(14,2)"`
	Currency           valueobject.Currency
	DeliveryLocationID *uuid.UUID
	DeliveryOptionID   *uuid.UUID
	Notes              string
	Items              []OrderItem `gorm:"foreignKey:OrderID"`
	CancelledAt        *time.Time
}

// OrderItem is an immutable line snapshot. VendorID and UnitPrice are
// copied from the product at placement so later catalog edits cannot
// rewrite order history.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	VendorID    uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   valueobject.Money `gorm:"type:decimal(12,2)"`
	TotalPrice  valueobject.Money `gorm:"type:decimal(14,2)"`
}

// NewOrder creates a pending order shell for a customer
func NewOrder(number string, customerID uuid.UUID) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Order number cannot be empty")
	}
	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		CustomerID:        customerID,
		Status:            OrderStatusPending,
		TotalAmount:       valueobject.ZeroXOF(),
		Currency:          valueobject.DefaultCurrency,
		Items:             make([]OrderItem, 0),
	}, nil
}

// AddItem appends a line snapshot and rolls it into the total
func (o *Order) AddItem(productID, vendorID uuid.UUID, productName string, quantity int, unitPrice valueobject.Money) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	lineTotal := unitPrice.MultiplyByInt(int64(quantity))
	total, err := o.TotalAmount.Add(lineTotal)
	if err != nil {
		return shared.NewDomainError("CURRENCY_MISMATCH", err.Error())
	}

	o.Items = append(o.Items, OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     o.ID,
		ProductID:   productID,
		VendorID:    vendorID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  lineTotal,
	})
	o.TotalAmount = total
	o.Currency = total.Currency()
	o.UpdatedAt = time.Now()
	return nil
}

// SetStatus moves the order to the given status. Free-form transitions
// are allowed except out of a terminal cancellation.
func (o *Order) SetStatus(status OrderStatus) error {
	if !IsValidOrderStatus(status) {
		return InvalidStatusError(status)
	}
	if o.Status == OrderStatusCancelled && status != OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled orders cannot change status")
	}
	if status == OrderStatusCancelled && o.Status != OrderStatusCancelled {
		now := time.Now()
		o.CancelledAt = &now
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// IsCancelled reports whether the order was cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// BelongsTo reports whether the order was placed by the given customer
func (o *Order) BelongsTo(customerID uuid.UUID) bool {
	return o.CustomerID == customerID
}

// HasVendor reports whether at least one item belongs to the vendor
func (o *Order) HasVendor(vendorID uuid.UUID) bool {
	for i := range o.Items {
		if o.Items[i].VendorID == vendorID {
			return true
		}
	}
	return false
}

// ItemsForVendor returns the subset of items owned by the vendor
func (o *Order) ItemsForVendor(vendorID uuid.UUID) []OrderItem {
	items := make([]OrderItem, 0, len(o.Items))
	for i := range o.Items {
		if o.Items[i].VendorID == vendorID {
			items = append(items, o.Items[i])
		}
	}
	return items
}
