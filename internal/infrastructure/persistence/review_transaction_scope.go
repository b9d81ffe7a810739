package persistence

import (
	"context"

	appreview "github.com/estuaire/backend/internal/application/review"
	"github.com/estuaire/backend/internal/domain/review"
	"gorm.io/gorm"
)

// GormReviewTransactionScope implements the review TransactionScope
// using GORM transactions, so a review mutation and the vendor rating
// recompute commit together.
type GormReviewTransactionScope struct {
	db *gorm.DB
}

// NewGormReviewTransactionScope creates a new GormReviewTransactionScope
func NewGormReviewTransactionScope(db *gorm.DB) *GormReviewTransactionScope {
	return &GormReviewTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormReviewTransactionScope) Execute(ctx context.Context, fn func(repos appreview.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormReviewRepositories{tx: tx})
	})
}

type gormReviewRepositories struct {
	tx *gorm.DB
}

// Reviews returns the review repository scoped to the current transaction
func (r *gormReviewRepositories) Reviews() review.ReviewRepository {
	return NewGormReviewRepository(r.tx)
}

// VendorRatings returns the vendor rating repository scoped to the current transaction
func (r *gormReviewRepositories) VendorRatings() review.VendorRatingRepository {
	return NewGormVendorRatingRepository(r.tx)
}

var _ appreview.TransactionScope = (*GormReviewTransactionScope)(nil)
var _ appreview.TransactionalRepositories = (*gormReviewRepositories)(nil)
