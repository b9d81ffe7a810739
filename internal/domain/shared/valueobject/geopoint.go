package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GeoPoint is a value object holding WGS84 coordinates for a location.
type GeoPoint struct {
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
}

// NewGeoPoint creates a GeoPoint after range validation
func NewGeoPoint(latitude, longitude decimal.Decimal) (GeoPoint, error) {
	if latitude.LessThan(decimal.NewFromInt(-90)) || latitude.GreaterThan(decimal.NewFromInt(90)) {
		return GeoPoint{}, fmt.Errorf("latitude out of range: %s", latitude)
	}
	if longitude.LessThan(decimal.NewFromInt(-180)) || longitude.GreaterThan(decimal.NewFromInt(180)) {
		return GeoPoint{}, fmt.Errorf("longitude out of range: %s", longitude)
	}
	return GeoPoint{Latitude: latitude, Longitude: longitude}, nil
}

// IsZero returns true when both coordinates are zero
func (p GeoPoint) IsZero() bool {
	return p.Latitude.IsZero() && p.Longitude.IsZero()
}
