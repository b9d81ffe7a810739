package location

import (
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location is a delivery or pickup address owned by a user.
// At most one location per owner may be the default.
type Location struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID
	Label     string
	Address   string
	City      string
	Country   string
	Point     valueobject.GeoPoint `gorm:"embedded;embeddedPrefix:geo_"`
	IsDefault bool
}

// NewLocation creates a location for the given owner
func NewLocation(userID uuid.UUID, label, address, city, country string) (*Location, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, shared.NewDomainError("INVALID_CITY", "City cannot be empty")
	}
	return &Location{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Label:             strings.TrimSpace(label),
		Address:           address,
		City:              city,
		Country:           strings.TrimSpace(country),
	}, nil
}

// SetCoordinates sets the geographic point after range validation
func (l *Location) SetCoordinates(latitude, longitude decimal.Decimal) error {
	point, err := valueobject.NewGeoPoint(latitude, longitude)
	if err != nil {
		return shared.NewDomainError("INVALID_COORDINATES", err.Error())
	}
	l.Point = point
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return nil
}

// MarkDefault flags this location as the owner's default.
// The repository clears the previous default in the same transaction.
func (l *Location) MarkDefault() {
	l.IsDefault = true
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// ClearDefault removes the default flag
func (l *Location) ClearDefault() {
	l.IsDefault = false
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// BelongsTo reports whether the location is owned by the given user
func (l *Location) BelongsTo(userID uuid.UUID) bool {
	return l.UserID == userID
}
