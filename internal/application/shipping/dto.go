package shipping

import (
	"time"

	"github.com/estuaire/backend/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateShipmentRequest creates the shipment for an order
type CreateShipmentRequest struct {
	Carrier               string     `json:"carrier" binding:"max=100"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
}

// UpdateShipmentStatusRequest moves a shipment to a new status
type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes" binding:"max=1000"`
}

// CreateDeliveryOptionRequest creates a delivery option
type CreateDeliveryOptionRequest struct {
	Name             string          `json:"name" binding:"required,max=100"`
	Type             string          `json:"type" binding:"required,oneof=standard express pickup"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	EstimatedDaysMin int             `json:"estimated_days_min" binding:"min=0"`
	EstimatedDaysMax int             `json:"estimated_days_max" binding:"min=0"`
}

// ShipmentResponse represents a shipment in API responses
type ShipmentResponse struct {
	ID                    uuid.UUID  `json:"id"`
	OrderID               uuid.UUID  `json:"order_id"`
	TrackingNumber        string     `json:"tracking_number"`
	Status                string     `json:"status"`
	Carrier               string     `json:"carrier,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// DeliveryOptionResponse represents a delivery option in API responses
type DeliveryOptionResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Price            decimal.Decimal `json:"price"`
	EstimatedDaysMin int             `json:"estimated_days_min"`
	EstimatedDaysMax int             `json:"estimated_days_max"`
	IsActive         bool            `json:"is_active"`
}

// ToShipmentResponse converts a domain shipment
func ToShipmentResponse(s *shipping.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                    s.ID,
		OrderID:               s.OrderID,
		TrackingNumber:        s.TrackingNumber,
		Status:                string(s.Status),
		Carrier:               s.Carrier,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ActualDeliveryDate:    s.ActualDeliveryDate,
		Notes:                 s.Notes,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

// ToDeliveryOptionResponse converts a domain delivery option
func ToDeliveryOptionResponse(opt *shipping.DeliveryOption) DeliveryOptionResponse {
	return DeliveryOptionResponse{
		ID:               opt.ID,
		Name:             opt.Name,
		Type:             string(opt.Type),
		Price:            opt.Price.Amount(),
		EstimatedDaysMin: opt.EstimatedDaysMin,
		EstimatedDaysMax: opt.EstimatedDaysMax,
		IsActive:         opt.IsActive,
	}
}
