package shipping

import (
	"strings"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
)

// DeliveryType classifies a delivery option
type DeliveryType string

const (
	DeliveryTypeStandard DeliveryType = "standard"
	DeliveryTypeExpress  DeliveryType = "express"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// DeliveryOption is reference data describing an offered delivery mode
type DeliveryOption struct {
	shared.BaseAggregateRoot
	Name             string
	Type             DeliveryType
	Price            valueobject.Money `gorm:"type:decimal(12,2)"`
	EstimatedDaysMin int
	EstimatedDaysMax int
	IsActive         bool
}

// NewDeliveryOption creates an active delivery option
func NewDeliveryOption(name string, deliveryType DeliveryType, price valueobject.Money, daysMin, daysMax int) (*DeliveryOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Delivery option name cannot be empty")
	}
	if deliveryType != DeliveryTypeStandard && deliveryType != DeliveryTypeExpress && deliveryType != DeliveryTypePickup {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown delivery type")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Delivery price cannot be negative")
	}
	if daysMin < 0 || daysMax < daysMin {
		return nil, shared.NewDomainError("INVALID_ESTIMATE", "Estimated day range is invalid")
	}
	return &DeliveryOption{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              deliveryType,
		Price:             price,
		EstimatedDaysMin:  daysMin,
		EstimatedDaysMax:  daysMax,
		IsActive:          true,
	}, nil
}
