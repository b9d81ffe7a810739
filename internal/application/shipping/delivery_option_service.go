package shipping

import (
	"context"

	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/estuaire/backend/internal/domain/shipping"
	"github.com/google/uuid"
)

// DeliveryOptionService manages delivery reference data
type DeliveryOptionService struct {
	optionRepo shipping.DeliveryOptionRepository
}

// NewDeliveryOptionService creates a new DeliveryOptionService
func NewDeliveryOptionService(optionRepo shipping.DeliveryOptionRepository) *DeliveryOptionService {
	return &DeliveryOptionService{optionRepo: optionRepo}
}

// Create creates a delivery option
func (s *DeliveryOptionService) Create(ctx context.Context, req CreateDeliveryOptionRequest) (*DeliveryOptionResponse, error) {
	price, err := valueobject.NewMoney(req.Price, valueobject.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	opt, err := shipping.NewDeliveryOption(req.Name, shipping.DeliveryType(req.Type), price, req.EstimatedDaysMin, req.EstimatedDaysMax)
	if err != nil {
		return nil, err
	}
	if err := s.optionRepo.Save(ctx, opt); err != nil {
		return nil, err
	}
	resp := ToDeliveryOptionResponse(opt)
	return &resp, nil
}

// List returns active delivery options
func (s *DeliveryOptionService) List(ctx context.Context) ([]DeliveryOptionResponse, error) {
	options, err := s.optionRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DeliveryOptionResponse, len(options))
	for i := range options {
		out[i] = ToDeliveryOptionResponse(&options[i])
	}
	return out, nil
}

// Delete removes a delivery option
func (s *DeliveryOptionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.optionRepo.Delete(ctx, id)
}
