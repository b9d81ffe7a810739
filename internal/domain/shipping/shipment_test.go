package shipping

import (
	"strings"
	"testing"
	"time"

	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	number := GenerateTrackingNumber(now)

	assert.Len(t, number, 4+14+3)
	assert.True(t, strings.HasPrefix(number, "SHIP20260314150926"))
}

func TestNewShipment(t *testing.T) {
	s, err := NewShipment(uuid.New(), "SHIP20260314150926123", "DHL")
	require.NoError(t, err)
	assert.Equal(t, ShipmentStatusPreparing, s.Status)
	assert.Nil(t, s.ActualDeliveryDate)

	_, err = NewShipment(uuid.Nil, "SHIP20260314150926123", "")
	assert.Error(t, err)
}

func TestShipmentSetStatus(t *testing.T) {
	t.Run("delivered stamps the actual date once", func(t *testing.T) {
		s, _ := NewShipment(uuid.New(), "SHIP20260314150926123", "")
		require.NoError(t, s.SetStatus(ShipmentStatusDelivered))
		require.NotNil(t, s.ActualDeliveryDate)
		first := *s.ActualDeliveryDate

		require.NoError(t, s.SetStatus(ShipmentStatusReturned))
		require.NoError(t, s.SetStatus(ShipmentStatusDelivered))
		assert.Equal(t, first, *s.ActualDeliveryDate)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		s, _ := NewShipment(uuid.New(), "SHIP20260314150926123", "")
		assert.Error(t, s.SetStatus("lost"))
	})

	t.Run("free-form transitions allowed", func(t *testing.T) {
		s, _ := NewShipment(uuid.New(), "SHIP20260314150926123", "")
		require.NoError(t, s.SetStatus(ShipmentStatusInTransit))
		require.NoError(t, s.SetStatus(ShipmentStatusPreparing))
	})
}

func TestNewDeliveryOption(t *testing.T) {
	t.Run("valid option", func(t *testing.T) {
		opt, err := NewDeliveryOption("Standard", DeliveryTypeStandard, valueobject.NewMoneyXOF(decimal.NewFromInt(1000)), 2, 5)
		require.NoError(t, err)
		assert.True(t, opt.IsActive)
	})

	t.Run("rejects inverted day range", func(t *testing.T) {
		_, err := NewDeliveryOption("Express", DeliveryTypeExpress, valueobject.ZeroXOF(), 5, 2)
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewDeliveryOption("Drone", "drone", valueobject.ZeroXOF(), 1, 2)
		assert.Error(t, err)
	})
}
