package review

import (
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorRating is the persisted aggregate of all reviews for a vendor.
// It is always recomputed from the full review set, never adjusted
// incrementally, so it converges after any mix of edits and deletes.
type VendorRating struct {
	shared.BaseAggregateRoot
	VendorID      uuid.UUID `gorm:"uniqueIndex"`
	AverageRating decimal.Decimal
	TotalReviews  int
	FiveStar      int
	FourStar      int
	ThreeStar     int
	TwoStar       int
	OneStar       int
}

// NewVendorRating creates a zero aggregate for a vendor
func NewVendorRating(vendorID uuid.UUID) *VendorRating {
	return &VendorRating{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		AverageRating:     decimal.Zero,
	}
}

// Recompute replaces the aggregate values from the full review set.
// The average is rounded to two decimal places.
func (v *VendorRating) Recompute(reviews []Review) {
	v.TotalReviews = len(reviews)
	v.FiveStar, v.FourStar, v.ThreeStar, v.TwoStar, v.OneStar = 0, 0, 0, 0, 0

	if len(reviews) == 0 {
		v.AverageRating = decimal.Zero
		v.UpdatedAt = time.Now()
		v.IncrementVersion()
		return
	}

	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
		switch reviews[i].Rating {
		case 5:
			v.FiveStar++
		case 4:
			v.FourStar++
		case 3:
			v.ThreeStar++
		case 2:
			v.TwoStar++
		case 1:
			v.OneStar++
		}
	}

	v.AverageRating = decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(reviews)))).
		Round(2)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// ProductReviewStats is a computed-on-demand summary for one product
type ProductReviewStats struct {
	ProductID     uuid.UUID       `json:"product_id"`
	AverageRating decimal.Decimal `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
}

// ComputeProductStats summarizes the reviews of a single product
func ComputeProductStats(productID uuid.UUID, reviews []Review) ProductReviewStats {
	stats := ProductReviewStats{ProductID: productID, AverageRating: decimal.Zero}
	sum := 0
	for i := range reviews {
		if reviews[i].ProductID != productID {
			continue
		}
		stats.TotalReviews++
		sum += reviews[i].Rating
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(stats.TotalReviews))).
			Round(2)
	}
	return stats
}
