package review

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReview(t *testing.T, vendorID uuid.UUID, rating int) Review {
	t.Helper()
	r, err := NewReview(uuid.New(), uuid.New(), vendorID, rating, "", "ok")
	require.NoError(t, err)
	return *r
}

func TestNewReview(t *testing.T) {
	t.Run("valid review", func(t *testing.T) {
		r, err := NewReview(uuid.New(), uuid.New(), uuid.New(), 4, " Great ", " seller was fast ")
		require.NoError(t, err)
		assert.Equal(t, "Great", r.Title)
		assert.Equal(t, "seller was fast", r.Comment)
		assert.False(t, r.IsVerified)
	})

	t.Run("rating bounds", func(t *testing.T) {
		_, err := NewReview(uuid.New(), uuid.New(), uuid.New(), 0, "", "")
		assert.Error(t, err)
		_, err = NewReview(uuid.New(), uuid.New(), uuid.New(), 6, "", "")
		assert.Error(t, err)
	})
}

func TestReviewUpdate(t *testing.T) {
	r, _ := NewReview(uuid.New(), uuid.New(), uuid.New(), 2, "", "meh")
	require.NoError(t, r.Update(5, "Changed my mind", "actually great"))
	assert.Equal(t, 5, r.Rating)
	assert.Error(t, r.Update(9, "", ""))
}

func TestVendorRatingRecompute(t *testing.T) {
	vendorID := uuid.New()

	t.Run("empty set yields zero aggregate", func(t *testing.T) {
		rating := NewVendorRating(vendorID)
		rating.Recompute(nil)
		assert.Equal(t, 0, rating.TotalReviews)
		assert.True(t, rating.AverageRating.IsZero())
	})

	t.Run("full recompute from review set", func(t *testing.T) {
		rating := NewVendorRating(vendorID)
		reviews := []Review{
			mustReview(t, vendorID, 5),
			mustReview(t, vendorID, 4),
			mustReview(t, vendorID, 4),
			mustReview(t, vendorID, 1),
		}
		rating.Recompute(reviews)

		assert.Equal(t, 4, rating.TotalReviews)
		assert.Equal(t, 1, rating.FiveStar)
		assert.Equal(t, 2, rating.FourStar)
		assert.Equal(t, 1, rating.OneStar)
		assert.True(t, rating.AverageRating.Equal(decimal.NewFromFloat(3.5)))
	})

	t.Run("recompute overwrites stale values", func(t *testing.T) {
		rating := NewVendorRating(vendorID)
		rating.Recompute([]Review{mustReview(t, vendorID, 1), mustReview(t, vendorID, 1)})
		rating.Recompute([]Review{mustReview(t, vendorID, 5)})

		assert.Equal(t, 1, rating.TotalReviews)
		assert.Equal(t, 0, rating.OneStar)
		assert.True(t, rating.AverageRating.Equal(decimal.NewFromInt(5)))
	})
}

func TestComputeProductStats(t *testing.T) {
	productID := uuid.New()
	other := mustReview(t, uuid.New(), 1)
	r1, _ := NewReview(productID, uuid.New(), uuid.New(), 5, "", "")
	r2, _ := NewReview(productID, uuid.New(), uuid.New(), 2, "", "")

	stats := ComputeProductStats(productID, []Review{*r1, *r2, other})
	assert.Equal(t, 2, stats.TotalReviews)
	assert.True(t, stats.AverageRating.Equal(decimal.NewFromFloat(3.5)))

	empty := ComputeProductStats(uuid.New(), nil)
	assert.Equal(t, 0, empty.TotalReviews)
	assert.True(t, empty.AverageRating.IsZero())
}
