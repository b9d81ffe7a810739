package location

import (
	"context"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LocationRepository defines persistence operations for locations
type LocationRepository interface {
	shared.Repository[Location]
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Location, error)
	FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*Location, error)
	// SaveAsDefault persists the location and clears the default flag on
	// the owner's other locations inside a single transaction.
	SaveAsDefault(ctx context.Context, loc *Location) error
}
