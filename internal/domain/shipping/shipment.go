package shipping

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ShipmentStatus represents the carrier-facing status of a shipment
type ShipmentStatus string

const (
	ShipmentStatusPreparing      ShipmentStatus = "preparing"
	ShipmentStatusPickedUp       ShipmentStatus = "picked_up"
	ShipmentStatusInTransit      ShipmentStatus = "in_transit"
	ShipmentStatusOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentStatusDelivered      ShipmentStatus = "delivered"
	ShipmentStatusFailed         ShipmentStatus = "failed"
	ShipmentStatusReturned       ShipmentStatus = "returned"
)

// ValidShipmentStatuses lists every accepted shipment status
var ValidShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPreparing,
	ShipmentStatusPickedUp,
	ShipmentStatusInTransit,
	ShipmentStatusOutForDelivery,
	ShipmentStatusDelivered,
	ShipmentStatusFailed,
	ShipmentStatusReturned,
}

// IsValidShipmentStatus reports whether s is a known shipment status
func IsValidShipmentStatus(s ShipmentStatus) bool {
	for _, v := range ValidShipmentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

const trackingNumberPrefix = "SHIP"

// GenerateTrackingNumber builds a tracking number of the form
// SHIP<YYYYMMDDHHMMSS><3 random digits>. Callers retry on collision.
func GenerateTrackingNumber(now time.Time) string {
	return fmt.Sprintf("%s%s%03d", trackingNumberPrefix, now.Format("20060102150405"), randomDigits(1000))
}

func randomDigits(bound int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(bound))
	if err != nil {
		return time.Now().UnixNano() % bound
	}
	return n.Int64()
}

// Shipment tracks the physical delivery of one order. Orders have at
// most one shipment.
type Shipment struct {
	shared.BaseAggregateRoot
	OrderID                uuid.UUID `gorm:"uniqueIndex"`
	TrackingNumber         string    `gorm:"uniqueIndex"`
	Status                 ShipmentStatus
	Carrier                string
	EstimatedDeliveryDate  *time.Time
	ActualDeliveryDate     *time.Time
	Notes                  string
}

// NewShipment creates a preparing shipment for an order
func NewShipment(orderID uuid.UUID, trackingNumber, carrier string) (*Shipment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if trackingNumber == "" {
		return nil, shared.NewDomainError("INVALID_TRACKING_NUMBER", "Tracking number cannot be empty")
	}
	return &Shipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		TrackingNumber:    trackingNumber,
		Status:            ShipmentStatusPreparing,
		Carrier:           carrier,
	}, nil
}

// SetStatus moves the shipment to the given status. Transitions are
// free-form; reaching delivered stamps the actual delivery date once.
func (s *Shipment) SetStatus(status ShipmentStatus) error {
	if !IsValidShipmentStatus(status) {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("invalid shipment status %q", status))
	}
	if status == ShipmentStatusDelivered && s.ActualDeliveryDate == nil {
		now := time.Now()
		s.ActualDeliveryDate = &now
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetEstimatedDelivery records the promised delivery date
func (s *Shipment) SetEstimatedDelivery(date time.Time) {
	s.EstimatedDeliveryDate = &date
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// IsDelivered reports whether the shipment reached the customer
func (s *Shipment) IsDelivered() bool {
	return s.Status == ShipmentStatusDelivered
}
