package review

import (
	"context"
	"errors"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/order"
	"github.com/estuaire/backend/internal/domain/review"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RatingCache is a read cache for vendor rating aggregates. It is
// invalidated whenever a recompute writes a fresh aggregate.
type RatingCache interface {
	Get(ctx context.Context, vendorID uuid.UUID) (*VendorRatingResponse, error)
	Set(ctx context.Context, rating *VendorRatingResponse) error
	Invalidate(ctx context.Context, vendorID uuid.UUID) error
}

// ReviewService handles reviews and the synchronous vendor rating
// aggregate. Every mutation recomputes the aggregate from the full
// review set inside the mutation's transaction.
type ReviewService struct {
	scope       TransactionScope
	productRepo catalog.ProductRepository
	orderRepo   order.OrderRepository
	cache       RatingCache
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	scope TransactionScope,
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
	cache RatingCache,
	logger *zap.Logger,
) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		scope:       scope,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Create creates a review. The vendor is derived from the product
// owner, and the review is marked verified when the author bought the
// product in one of their orders. A supplied order item must belong to
// the author and reference the same product.
func (s *ReviewService) Create(ctx context.Context, authorID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.IsOwnedBy(authorID) {
		return nil, shared.NewDomainError("INVALID_INPUT", "You cannot review your own product")
	}

	r, err := review.NewReview(req.ProductID, authorID, product.OwnerID, req.Rating, req.Title, req.Comment)
	if err != nil {
		return nil, err
	}

	if req.OrderItemID != nil {
		item, err := s.verifyOrderItem(ctx, authorID, req.ProductID, *req.OrderItemID)
		if err != nil {
			return nil, err
		}
		r.LinkOrderItem(item.ID)
	} else {
		verified, err := s.orderRepo.HasPurchased(ctx, authorID, req.ProductID)
		if err != nil {
			return nil, err
		}
		if verified {
			r.MarkVerified()
		}
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.Reviews().FindByAuthorAndProduct(ctx, authorID, req.ProductID)
		if err == nil && existing != nil {
			return shared.NewDomainError("ALREADY_EXISTS", "You have already reviewed this product")
		}
		if err != nil && !isNotFound(err) {
			return err
		}
		if err := repos.Reviews().Save(ctx, r); err != nil {
			return err
		}
		return s.recompute(ctx, repos, r.VendorID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, r.VendorID)
	resp := ToReviewResponse(r)
	return &resp, nil
}

// Update edits the author's own review and recomputes the aggregate
func (s *ReviewService) Update(ctx context.Context, authorID, reviewID uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	var updated *review.Review
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		r, err := repos.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if !r.IsAuthoredBy(authorID) {
			return shared.ErrForbidden
		}
		if err := r.Update(req.Rating, req.Title, req.Comment); err != nil {
			return err
		}
		if err := repos.Reviews().Save(ctx, r); err != nil {
			return err
		}
		updated = r
		return s.recompute(ctx, repos, r.VendorID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated.VendorID)
	resp := ToReviewResponse(updated)
	return &resp, nil
}

// Delete removes the author's own review and recomputes the aggregate
func (s *ReviewService) Delete(ctx context.Context, authorID, reviewID uuid.UUID) error {
	var vendorID uuid.UUID
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		r, err := repos.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if !r.IsAuthoredBy(authorID) {
			return shared.ErrForbidden
		}
		if err := repos.Reviews().Delete(ctx, reviewID); err != nil {
			return err
		}
		vendorID = r.VendorID
		return s.recompute(ctx, repos, r.VendorID)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, vendorID)
	return nil
}

// ListForProduct returns a product's reviews
func (s *ReviewService) ListForProduct(ctx context.Context, productID uuid.UUID, page, pageSize int) (*shared.Paginated[ReviewResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	var result shared.Paginated[ReviewResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		reviews, total, err := repos.Reviews().FindByProduct(ctx, productID, filter)
		if err != nil {
			return err
		}
		result = shared.NewPaginated(ToReviewResponses(reviews), total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MyReviews returns the caller's reviews
func (s *ReviewService) MyReviews(ctx context.Context, authorID uuid.UUID, page, pageSize int) (*shared.Paginated[ReviewResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	var result shared.Paginated[ReviewResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		reviews, total, err := repos.Reviews().FindByAuthor(ctx, authorID, filter)
		if err != nil {
			return err
		}
		result = shared.NewPaginated(ToReviewResponses(reviews), total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetVendorRating returns the vendor's aggregate, serving the cache
// when warm and falling back to a zero aggregate for unreviewed vendors
func (s *ReviewService) GetVendorRating(ctx context.Context, vendorID uuid.UUID) (*VendorRatingResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, vendorID); err == nil && cached != nil {
			return cached, nil
		}
	}

	var resp VendorRatingResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rating, err := repos.VendorRatings().FindByVendor(ctx, vendorID)
		if err != nil {
			if isNotFound(err) {
				resp = ToVendorRatingResponse(review.NewVendorRating(vendorID))
				return nil
			}
			return err
		}
		resp = ToVendorRatingResponse(rating)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, &resp); err != nil {
			s.logger.Warn("failed to cache vendor rating", zap.Error(err))
		}
	}
	return &resp, nil
}

// GetProductStats computes a product's review summary on demand
func (s *ReviewService) GetProductStats(ctx context.Context, productID uuid.UUID) (*review.ProductReviewStats, error) {
	var stats review.ProductReviewStats
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		reviews, err := repos.Reviews().FindAllByProduct(ctx, productID)
		if err != nil {
			return err
		}
		stats = review.ComputeProductStats(productID, reviews)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// PendingReviews lists the caller's delivered purchases that have no
// review yet
func (s *ReviewService) PendingReviews(ctx context.Context, authorID uuid.UUID) ([]PendingReviewResponse, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 100
	filter.Filters["status"] = string(order.OrderStatusDelivered)

	orders, _, err := s.orderRepo.FindByCustomer(ctx, authorID, filter)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingReviewResponse, 0)
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for i := range orders {
			for j := range orders[i].Items {
				item := &orders[i].Items[j]
				existing, err := repos.Reviews().FindByAuthorAndProduct(ctx, authorID, item.ProductID)
				if err != nil && !isNotFound(err) {
					return err
				}
				if existing != nil {
					continue
				}
				pending = append(pending, PendingReviewResponse{
					OrderID:     orders[i].ID,
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					DeliveredAt: orders[i].UpdatedAt,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// recompute reads the vendor's full review set and rewrites the
// aggregate; last writer wins.
func (s *ReviewService) recompute(ctx context.Context, repos TransactionalRepositories, vendorID uuid.UUID) error {
	reviews, err := repos.Reviews().FindAllByVendor(ctx, vendorID)
	if err != nil {
		return err
	}

	rating, err := repos.VendorRatings().FindByVendor(ctx, vendorID)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		rating = review.NewVendorRating(vendorID)
	}
	rating.Recompute(reviews)
	return repos.VendorRatings().Save(ctx, rating)
}

// verifyOrderItem resolves a caller-supplied order item and hides it
// behind a not-found unless it sits on the author's own order and
// references the reviewed product.
func (s *ReviewService) verifyOrderItem(ctx context.Context, authorID, productID, orderItemID uuid.UUID) (*order.OrderItem, error) {
	item, err := s.orderRepo.FindItemByID(ctx, orderItemID)
	if err != nil {
		return nil, err
	}
	if item.ProductID != productID {
		return nil, shared.ErrNotFound
	}
	o, err := s.orderRepo.FindByID(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(authorID) {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (s *ReviewService) invalidate(ctx context.Context, vendorID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, vendorID); err != nil {
		s.logger.Warn("failed to invalidate vendor rating cache",
			zap.String("vendor_id", vendorID.String()), zap.Error(err))
	}
}

func isNotFound(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code
}
