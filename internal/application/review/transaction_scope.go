package review

import (
	"context"

	"github.com/estuaire/backend/internal/domain/review"
)

// TransactionScope runs review mutations and the vendor rating
// recompute inside one database transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the review repositories bound to
// the current transaction.
type TransactionalRepositories interface {
	Reviews() review.ReviewRepository
	VendorRatings() review.VendorRatingRepository
}

// NoOpTransactionScope runs scope functions without a real transaction
type NoOpTransactionScope struct {
	reviewRepo review.ReviewRepository
	ratingRepo review.VendorRatingRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(reviewRepo review.ReviewRepository, ratingRepo review.VendorRatingRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		reviewRepo: reviewRepo,
		ratingRepo: ratingRepo,
	}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Reviews returns the review repository
func (s *NoOpTransactionScope) Reviews() review.ReviewRepository { return s.reviewRepo }

// VendorRatings returns the vendor rating repository
func (s *NoOpTransactionScope) VendorRatings() review.VendorRatingRepository { return s.ratingRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
