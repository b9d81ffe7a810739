package review

import (
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Review is a customer's rating of a product. VendorID is always
// derived from the product owner, never taken from the caller.
// OrderItemID, when set, points at the purchase line backing the
// review.
type Review struct {
	shared.BaseAggregateRoot
	ProductID   uuid.UUID
	AuthorID    uuid.UUID
	VendorID    uuid.UUID
	OrderItemID *uuid.UUID
	Rating      int
	Title       string
	Comment     string
	IsVerified  bool
}

// NewReview creates a review for a product
func NewReview(productID, authorID, vendorID uuid.UUID, rating int, title, comment string) (*Review, error) {
	if productID == uuid.Nil || authorID == uuid.Nil || vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product, author and vendor are required")
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	return &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		AuthorID:          authorID,
		VendorID:          vendorID,
		Rating:            rating,
		Title:             strings.TrimSpace(title),
		Comment:           strings.TrimSpace(comment),
	}, nil
}

// Update changes the rating and text of the review
func (r *Review) Update(rating int, title, comment string) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	r.Title = strings.TrimSpace(title)
	r.Comment = strings.TrimSpace(comment)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// MarkVerified flags the review as a verified purchase
func (r *Review) MarkVerified() {
	r.IsVerified = true
	r.Touch()
}

// LinkOrderItem records the purchase line backing the review and marks
// it verified
func (r *Review) LinkOrderItem(orderItemID uuid.UUID) {
	r.OrderItemID = &orderItemID
	r.MarkVerified()
}

// IsAuthoredBy reports whether the given user wrote the review
func (r *Review) IsAuthoredBy(userID uuid.UUID) bool {
	return r.AuthorID == userID
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return nil
}
