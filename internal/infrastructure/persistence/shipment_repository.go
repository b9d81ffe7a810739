package persistence

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shipping"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByID finds a shipment by its ID
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Shipment, error) {
	var s shipping.Shipment
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByOrder finds the shipment of an order
func (r *GormShipmentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*shipping.Shipment, error) {
	var s shipping.Shipment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByTrackingNumber finds a shipment by tracking number
func (r *GormShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipping.Shipment, error) {
	var s shipping.Shipment
	if err := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ExistsByTrackingNumber checks if a shipment with the tracking number exists
func (r *GormShipmentRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&shipping.Shipment{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByOrder checks if the order already has a shipment
func (r *GormShipmentRepository) ExistsByOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&shipping.Shipment{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a shipment
func (r *GormShipmentRepository) Save(ctx context.Context, s *shipping.Shipment) error {
	return r.db.WithContext(ctx).Save(s).Error
}

var _ shipping.ShipmentRepository = (*GormShipmentRepository)(nil)

// GormDeliveryOptionRepository implements DeliveryOptionRepository using GORM
type GormDeliveryOptionRepository struct {
	db *gorm.DB
}

// NewGormDeliveryOptionRepository creates a new GormDeliveryOptionRepository
func NewGormDeliveryOptionRepository(db *gorm.DB) *GormDeliveryOptionRepository {
	return &GormDeliveryOptionRepository{db: db}
}

// FindByID finds a delivery option by its ID
func (r *GormDeliveryOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.DeliveryOption, error) {
	var opt shipping.DeliveryOption
	if err := r.db.WithContext(ctx).First(&opt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &opt, nil
}

// FindActive finds all active delivery options, cheapest first
func (r *GormDeliveryOptionRepository) FindActive(ctx context.Context) ([]shipping.DeliveryOption, error) {
	var options []shipping.DeliveryOption
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Save creates or updates a delivery option
func (r *GormDeliveryOptionRepository) Save(ctx context.Context, opt *shipping.DeliveryOption) error {
	return r.db.WithContext(ctx).Save(opt).Error
}

// Delete deletes a delivery option
func (r *GormDeliveryOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shipping.DeliveryOption{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ shipping.DeliveryOptionRepository = (*GormDeliveryOptionRepository)(nil)
