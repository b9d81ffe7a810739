package review

import (
	"time"

	"github.com/estuaire/backend/internal/domain/review"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateReviewRequest creates a review for a product. OrderItemID is
// optional; when set it must reference the author's own purchase of
// the same product.
type CreateReviewRequest struct {
	ProductID   uuid.UUID  `json:"product_id" binding:"required"`
	OrderItemID *uuid.UUID `json:"order_item_id"`
	Rating      int        `json:"rating" binding:"required,min=1,max=5"`
	Title       string     `json:"title" binding:"max=200"`
	Comment     string     `json:"comment" binding:"max=5000"`
}

// UpdateReviewRequest updates an existing review
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"max=200"`
	Comment string `json:"comment" binding:"max=5000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	VendorID    uuid.UUID  `json:"vendor_id"`
	OrderItemID *uuid.UUID `json:"order_item_id,omitempty"`
	Rating      int        `json:"rating"`
	Title       string     `json:"title,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	IsVerified  bool       `json:"is_verified"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// VendorRatingResponse represents the persisted vendor aggregate
type VendorRatingResponse struct {
	VendorID      uuid.UUID       `json:"vendor_id"`
	AverageRating decimal.Decimal `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
	FiveStar      int             `json:"five_star"`
	FourStar      int             `json:"four_star"`
	ThreeStar     int             `json:"three_star"`
	TwoStar       int             `json:"two_star"`
	OneStar       int             `json:"one_star"`
}

// PendingReviewResponse is a delivered purchase awaiting a review
type PendingReviewResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// ToReviewResponse converts a domain review
func ToReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		AuthorID:    r.AuthorID,
		VendorID:    r.VendorID,
		OrderItemID: r.OrderItemID,
		Rating:      r.Rating,
		Title:       r.Title,
		Comment:     r.Comment,
		IsVerified:  r.IsVerified,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToReviewResponses converts a slice of reviews
func ToReviewResponses(reviews []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = ToReviewResponse(&reviews[i])
	}
	return out
}

// ToVendorRatingResponse converts a domain vendor rating
func ToVendorRatingResponse(v *review.VendorRating) VendorRatingResponse {
	return VendorRatingResponse{
		VendorID:      v.VendorID,
		AverageRating: v.AverageRating,
		TotalReviews:  v.TotalReviews,
		FiveStar:      v.FiveStar,
		FourStar:      v.FourStar,
		ThreeStar:     v.ThreeStar,
		TwoStar:       v.TwoStar,
		OneStar:       v.OneStar,
	}
}
