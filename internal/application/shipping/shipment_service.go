package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/estuaire/backend/internal/domain/notification"
	"github.com/estuaire/backend/internal/domain/order"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shipping"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const trackingRetries = 5

// ShipmentService handles shipment creation and tracking
type ShipmentService struct {
	shipmentRepo     shipping.ShipmentRepository
	orderRepo        order.OrderRepository
	notificationRepo notification.NotificationRepository
	logger           *zap.Logger
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	shipmentRepo shipping.ShipmentRepository,
	orderRepo order.OrderRepository,
	notificationRepo notification.NotificationRepository,
	logger *zap.Logger,
) *ShipmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShipmentService{
		shipmentRepo:     shipmentRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create creates the single shipment for an order. Only a vendor with
// items on the order may create it; a second attempt is rejected.
func (s *ShipmentService) Create(ctx context.Context, vendorID, orderID uuid.UUID, req CreateShipmentRequest) (*ShipmentResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.HasVendor(vendorID) {
		return nil, shared.ErrNotFound
	}
	if o.IsCancelled() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cancelled orders cannot be shipped")
	}

	exists, err := s.shipmentRepo.ExistsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order already has a shipment")
	}

	trackingNumber, err := s.uniqueTrackingNumber(ctx)
	if err != nil {
		return nil, err
	}

	shipment, err := shipping.NewShipment(orderID, trackingNumber, req.Carrier)
	if err != nil {
		return nil, err
	}
	if req.EstimatedDeliveryDate != nil {
		shipment.SetEstimatedDelivery(*req.EstimatedDeliveryDate)
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	s.logger.Info("shipment created",
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.String("order_id", orderID.String()),
	)
	resp := ToShipmentResponse(shipment)
	return &resp, nil
}

// UpdateStatus moves the shipment to a new status and tells the customer
func (s *ShipmentService) UpdateStatus(ctx context.Context, vendorID, shipmentID uuid.UUID, req UpdateShipmentStatusRequest) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	o, err := s.orderRepo.FindByID(ctx, shipment.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.HasVendor(vendorID) {
		return nil, shared.ErrNotFound
	}

	if err := shipment.SetStatus(shipping.ShipmentStatus(req.Status)); err != nil {
		return nil, err
	}
	if req.Notes != "" {
		shipment.Notes = req.Notes
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	if n, err := notification.NewNotification(o.CustomerID, notification.TypeShipmentStatus,
		"Shipment update", fmt.Sprintf("Shipment %s is now %s.", shipment.TrackingNumber, shipment.Status)); err == nil {
		n.AttachOrder(o.ID)
		if err := s.notificationRepo.Save(ctx, n); err != nil {
			s.logger.Warn("failed to save shipment notification", zap.Error(err))
		}
	}

	resp := ToShipmentResponse(shipment)
	return &resp, nil
}

// GetForOrder returns the shipment of an order, visible to the
// customer and to vendors on the order
func (s *ShipmentService) GetForOrder(ctx context.Context, userID, orderID uuid.UUID) (*ShipmentResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(userID) && !o.HasVendor(userID) {
		return nil, shared.ErrNotFound
	}
	shipment, err := s.shipmentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToShipmentResponse(shipment)
	return &resp, nil
}

// Track resolves a tracking number. Tracking is public, numbers are
// unguessable enough for a marketplace of this size.
func (s *ShipmentService) Track(ctx context.Context, trackingNumber string) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	resp := ToShipmentResponse(shipment)
	return &resp, nil
}

func (s *ShipmentService) uniqueTrackingNumber(ctx context.Context) (string, error) {
	for range trackingRetries {
		number := shipping.GenerateTrackingNumber(time.Now())
		exists, err := s.shipmentRepo.ExistsByTrackingNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", shared.ErrTransient
}
