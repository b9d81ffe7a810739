package shipping

import (
	"context"

	"github.com/google/uuid"
)

// ShipmentRepository defines persistence operations for shipments
type ShipmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)
	ExistsByOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	Save(ctx context.Context, s *Shipment) error
}

// DeliveryOptionRepository defines persistence operations for delivery options
type DeliveryOptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryOption, error)
	FindActive(ctx context.Context) ([]DeliveryOption, error)
	Save(ctx context.Context, opt *DeliveryOption) error
	Delete(ctx context.Context, id uuid.UUID) error
}
