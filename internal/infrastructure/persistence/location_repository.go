package persistence

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/location"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByID finds a location by its ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	var loc location.Location
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// FindAll finds all locations matching the filter
func (r *GormLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]location.Location, error) {
	var locations []location.Location
	query := r.db.WithContext(ctx).Model(&location.Location{})
	query = applyOrder(query, filter, locationSortColumns, "created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindByUser finds all locations belonging to a user, default first
func (r *GormLocationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]location.Location, error) {
	var locations []location.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindDefaultByUser finds the user's default location
func (r *GormLocationRepository) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*location.Location, error) {
	var loc location.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// Save creates or updates a location
func (r *GormLocationRepository) Save(ctx context.Context, loc *location.Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

// SaveAsDefault persists the location and clears the default flag on the
// owner's other locations inside a single transaction
func (r *GormLocationRepository) SaveAsDefault(ctx context.Context, loc *location.Location) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&location.Location{}).
			Where("user_id = ? AND id <> ?", loc.UserID, loc.ID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		loc.MarkDefault()
		return tx.Save(loc).Error
	})
}

// Delete deletes a location
func (r *GormLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&location.Location{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts locations matching the filter
func (r *GormLocationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&location.Location{})
	if userID, ok := filter.Filters["user_id"]; ok {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var locationSortColumns = map[string]bool{
	"created_at": true,
	"city":       true,
	"label":      true,
}

var _ location.LocationRepository = (*GormLocationRepository)(nil)
