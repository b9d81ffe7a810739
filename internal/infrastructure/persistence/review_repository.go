package persistence

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/review"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var rev review.Review
	if err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// FindByProduct finds a product's reviews with a total count
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]review.Review, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Where("product_id = ?", productID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []review.Review
	query := applyPagination(base.Order("created_at DESC"), filter)
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// FindByAuthor finds an author's reviews with a total count
func (r *GormReviewRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID, filter shared.Filter) ([]review.Review, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Where("author_id = ?", authorID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []review.Review
	query := applyPagination(base.Order("created_at DESC"), filter)
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// FindAllByVendor loads the complete review set for a vendor
func (r *GormReviewRepository) FindAllByVendor(ctx context.Context, vendorID uuid.UUID) ([]review.Review, error) {
	var reviews []review.Review
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindAllByProduct loads the complete review set for a product
func (r *GormReviewRepository) FindAllByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error) {
	var reviews []review.Review
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByAuthorAndProduct finds the author's review of a product
func (r *GormReviewRepository) FindByAuthorAndProduct(ctx context.Context, authorID, productID uuid.UUID) (*review.Review, error) {
	var rev review.Review
	if err := r.db.WithContext(ctx).
		Where("author_id = ? AND product_id = ?", authorID, productID).
		First(&rev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, rev *review.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&review.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ review.ReviewRepository = (*GormReviewRepository)(nil)

// GormVendorRatingRepository implements VendorRatingRepository using GORM
type GormVendorRatingRepository struct {
	db *gorm.DB
}

// NewGormVendorRatingRepository creates a new GormVendorRatingRepository
func NewGormVendorRatingRepository(db *gorm.DB) *GormVendorRatingRepository {
	return &GormVendorRatingRepository{db: db}
}

// FindByVendor finds a vendor's rating aggregate
func (r *GormVendorRatingRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) (*review.VendorRating, error) {
	var rating review.VendorRating
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Save creates or updates a vendor rating aggregate
func (r *GormVendorRatingRepository) Save(ctx context.Context, rating *review.VendorRating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

var _ review.VendorRatingRepository = (*GormVendorRatingRepository)(nil)
