package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(1500.50), XOF)
		require.NoError(t, err)
		assert.Equal(t, XOF, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(1500.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", XOF)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", XOF)
		assert.Error(t, err)
	})
}

func TestZeroXOF(t *testing.T) {
	m := ZeroXOF()
	assert.True(t, m.IsZero())
	assert.Equal(t, XOF, m.Currency())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		m1 := NewMoneyXOF(decimal.NewFromInt(1000))
		m2 := NewMoneyXOF(decimal.NewFromInt(250))
		result, err := m1.Add(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(1250)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoney(decimal.NewFromInt(100), XOF)
		m2, _ := NewMoney(decimal.NewFromInt(50), USD)
		_, err := m1.Add(m2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "different currencies")
	})
}

func TestMoneyMultiplyByInt(t *testing.T) {
	unit, _ := NewMoneyFromString("2500", XOF)
	total := unit.MultiplyByInt(3)
	assert.True(t, total.Amount().Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, XOF, total.Currency())
}

func TestMoneyComparisons(t *testing.T) {
	small := NewMoneyXOF(decimal.NewFromInt(10))
	big := NewMoneyXOF(decimal.NewFromInt(20))

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, small.Equals(NewMoneyXOF(decimal.NewFromInt(10))))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, _ := NewMoneyFromString("199.99", XOF)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value with default currency", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.50"))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(42.50)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("nil scans to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})
}

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := NewGeoPoint(decimal.NewFromFloat(6.1725), decimal.NewFromFloat(1.2314))
		require.NoError(t, err)
		assert.False(t, p.IsZero())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := NewGeoPoint(decimal.NewFromInt(91), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := NewGeoPoint(decimal.Zero, decimal.NewFromInt(-181))
		assert.Error(t, err)
	})
}
