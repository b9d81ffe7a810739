package location

import (
	"context"

	"github.com/estuaire/backend/internal/domain/location"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LocationService manages a user's saved locations
type LocationService struct {
	locationRepo location.LocationRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo location.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// Create adds a location for the user. When it is the user's first
// location, or the request asks for it, the location becomes the
// default and any previous default is cleared atomically.
func (s *LocationService) Create(ctx context.Context, userID uuid.UUID, req UpsertLocationRequest) (*LocationResponse, error) {
	loc, err := location.NewLocation(userID, req.Label, req.Address, req.City, req.Country)
	if err != nil {
		return nil, err
	}
	if req.Latitude != nil && req.Longitude != nil {
		if err := loc.SetCoordinates(*req.Latitude, *req.Longitude); err != nil {
			return nil, err
		}
	}

	existing, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.IsDefault || len(existing) == 0 {
		loc.MarkDefault()
		if err := s.locationRepo.SaveAsDefault(ctx, loc); err != nil {
			return nil, err
		}
	} else if err := s.locationRepo.Save(ctx, loc); err != nil {
		return nil, err
	}

	resp := ToLocationResponse(loc)
	return &resp, nil
}

// Update modifies one of the user's locations
func (s *LocationService) Update(ctx context.Context, userID, locationID uuid.UUID, req UpsertLocationRequest) (*LocationResponse, error) {
	loc, err := s.ownedLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	loc.Label = req.Label
	loc.Address = req.Address
	loc.City = req.City
	loc.Country = req.Country
	if req.Latitude != nil && req.Longitude != nil {
		if err := loc.SetCoordinates(*req.Latitude, *req.Longitude); err != nil {
			return nil, err
		}
	}

	if req.IsDefault && !loc.IsDefault {
		loc.MarkDefault()
		if err := s.locationRepo.SaveAsDefault(ctx, loc); err != nil {
			return nil, err
		}
	} else if err := s.locationRepo.Save(ctx, loc); err != nil {
		return nil, err
	}

	resp := ToLocationResponse(loc)
	return &resp, nil
}

// List returns the user's locations
func (s *LocationService) List(ctx context.Context, userID uuid.UUID) ([]LocationResponse, error) {
	locations, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToLocationResponses(locations), nil
}

// Delete removes one of the user's locations
func (s *LocationService) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	loc, err := s.ownedLocation(ctx, userID, locationID)
	if err != nil {
		return err
	}
	return s.locationRepo.Delete(ctx, loc.ID)
}

func (s *LocationService) ownedLocation(ctx context.Context, userID, locationID uuid.UUID) (*location.Location, error) {
	loc, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if !loc.BelongsTo(userID) {
		// Hidden rather than forbidden, other users' locations do not exist.
		return nil, shared.ErrNotFound
	}
	return loc, nil
}
