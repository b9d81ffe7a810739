package catalog

import (
	"errors"
	"testing"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, quantity int) *Product {
	t.Helper()
	p, err := NewProduct(uuid.New(), "Wax print fabric", valueobject.NewMoneyXOF(decimal.NewFromInt(5000)), quantity, uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.SetStatus(ProductStatusActive))
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("starts pending with tracked stock", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "Basket", valueobject.NewMoneyXOF(decimal.NewFromInt(1200)), 3, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, ProductStatusPending, p.Status)
		assert.True(t, p.TracksStock)
		assert.Equal(t, 3, p.Quantity)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "Basket", valueobject.NewMoneyXOF(decimal.NewFromInt(-1)), 3, uuid.New())
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "Basket", valueobject.ZeroXOF(), -1, uuid.New())
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "  ", valueobject.ZeroXOF(), 1, uuid.New())
		assert.Error(t, err)
	})
}

func TestProductDecrementStock(t *testing.T) {
	t.Run("decrements and stays active above zero", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.DecrementStock(3))
		assert.Equal(t, 2, p.Quantity)
		assert.Equal(t, ProductStatusActive, p.Status)
	})

	t.Run("flips to sold at zero", func(t *testing.T) {
		p := newTestProduct(t, 2)
		require.NoError(t, p.DecrementStock(2))
		assert.Equal(t, 0, p.Quantity)
		assert.Equal(t, ProductStatusSold, p.Status)
	})

	t.Run("rejects over-decrement with detail error", func(t *testing.T) {
		p := newTestProduct(t, 1)
		err := p.DecrementStock(4)
		require.Error(t, err)

		var stockErr *shared.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, p.ID, stockErr.ProductID)
		assert.Equal(t, 4, stockErr.Requested)
		assert.Equal(t, 1, stockErr.Available)
		assert.Equal(t, 1, p.Quantity)
	})

	t.Run("untracked stock never decrements", func(t *testing.T) {
		p := newTestProduct(t, 1)
		p.TracksStock = false
		require.NoError(t, p.DecrementStock(100))
		assert.Equal(t, 1, p.Quantity)
		assert.True(t, p.IsAvailable(100))
	})
}

func TestProductRestoreStock(t *testing.T) {
	p := newTestProduct(t, 1)
	require.NoError(t, p.DecrementStock(1))
	require.Equal(t, ProductStatusSold, p.Status)

	require.NoError(t, p.RestoreStock(1))
	assert.Equal(t, 1, p.Quantity)
	assert.Equal(t, ProductStatusActive, p.Status)
}

func TestProductSetStatus(t *testing.T) {
	p := newTestProduct(t, 1)
	assert.Error(t, p.SetStatus("archived"))
	require.NoError(t, p.SetStatus(ProductStatusInactive))
	assert.False(t, p.IsActive())
}

func TestProductSetQuantityRevivesSoldListing(t *testing.T) {
	p := newTestProduct(t, 1)
	require.NoError(t, p.DecrementStock(1))
	require.NoError(t, p.SetQuantity(5))
	assert.Equal(t, ProductStatusActive, p.Status)
	assert.Equal(t, 5, p.Quantity)
}
