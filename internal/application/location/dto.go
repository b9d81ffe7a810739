package location

import (
	"time"

	"github.com/estuaire/backend/internal/domain/location"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertLocationRequest creates or updates a location
type UpsertLocationRequest struct {
	Label     string           `json:"label" binding:"max=100"`
	Address   string           `json:"address" binding:"required,max=300"`
	City      string           `json:"city" binding:"required,max=100"`
	Country   string           `json:"country" binding:"max=100"`
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
	IsDefault bool             `json:"is_default"`
}

// LocationResponse represents a location in API responses
type LocationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Label     string          `json:"label,omitempty"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	Country   string          `json:"country,omitempty"`
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
	IsDefault bool            `json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToLocationResponse converts a domain location to its API representation
func ToLocationResponse(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Label:     l.Label,
		Address:   l.Address,
		City:      l.City,
		Country:   l.Country,
		Latitude:  l.Point.Latitude,
		Longitude: l.Point.Longitude,
		IsDefault: l.IsDefault,
		CreatedAt: l.CreatedAt,
	}
}

// ToLocationResponses converts a slice of locations
func ToLocationResponses(locations []location.Location) []LocationResponse {
	out := make([]LocationResponse, len(locations))
	for i := range locations {
		out[i] = ToLocationResponse(&locations[i])
	}
	return out
}
