package order

import (
	"time"

	"github.com/estuaire/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest turns the caller's cart into an order
type PlaceOrderRequest struct {
	DeliveryLocationID uuid.UUID  `json:"delivery_location_id" binding:"required"`
	DeliveryOptionID   *uuid.UUID `json:"delivery_option_id"`
	Notes              string     `json:"notes" binding:"max=1000"`
}

// UpdateStatusRequest moves an order to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListFilter represents filter options for order listings
type OrderListFilter struct {
	Status   *string `form:"status"`
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}

// OrderItemResponse represents an order line snapshot
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Number             string              `json:"number"`
	CustomerID         uuid.UUID           `json:"customer_id"`
	Status             string              `json:"status"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	Currency           string              `json:"currency"`
	DeliveryLocationID *uuid.UUID          `json:"delivery_location_id,omitempty"`
	DeliveryOptionID   *uuid.UUID          `json:"delivery_option_id,omitempty"`
	Notes              string              `json:"notes,omitempty"`
	Items              []OrderItemResponse `json:"items"`
	CancelledAt        *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

// SaleItemResponse represents one sold line in a vendor's sales listing
type SaleItemResponse struct {
	OrderItemResponse
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number,omitempty"`
	SoldAt      time.Time `json:"sold_at"`
}

// ToOrderItemResponse converts a domain order item
func ToOrderItemResponse(item *order.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		VendorID:    item.VendorID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice.Amount(),
		TotalPrice:  item.TotalPrice.Amount(),
	}
}

// ToOrderResponse converts a domain order with all its items
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}
	return OrderResponse{
		ID:                 o.ID,
		Number:             o.Number,
		CustomerID:         o.CustomerID,
		Status:             string(o.Status),
		TotalAmount:        o.TotalAmount.Amount(),
		Currency:           string(o.Currency),
		DeliveryLocationID: o.DeliveryLocationID,
		DeliveryOptionID:   o.DeliveryOptionID,
		Notes:              o.Notes,
		Items:              items,
		CancelledAt:        o.CancelledAt,
		CreatedAt:          o.CreatedAt,
	}
}

// ToVendorOrderResponse converts an order with items scoped to one vendor
func ToVendorOrderResponse(o *order.Order, vendorID uuid.UUID) OrderResponse {
	resp := ToOrderResponse(o)
	scoped := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.VendorID == vendorID {
			scoped = append(scoped, item)
		}
	}
	resp.Items = scoped
	return resp
}
