package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItem(t *testing.T) {
	c, err := NewCart(uuid.New())
	require.NoError(t, err)
	productID := uuid.New()

	t.Run("appends a new line", func(t *testing.T) {
		total, err := c.AddItem(productID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, c.Items, 1)
	})

	t.Run("merges quantity into the existing line", func(t *testing.T) {
		total, err := c.AddItem(productID, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := c.AddItem(uuid.New(), 0)
		assert.Error(t, err)
	})
}

func TestCartUpdateItem(t *testing.T) {
	c, _ := NewCart(uuid.New())
	_, err := c.AddItem(uuid.New(), 2)
	require.NoError(t, err)
	itemID := c.Items[0].ID

	t.Run("replaces the quantity", func(t *testing.T) {
		item, err := c.UpdateItem(itemID, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, item.Quantity)
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		_, err := c.UpdateItem(uuid.New(), 1)
		assert.Error(t, err)
	})
}

func TestCartRemoveItemAndClear(t *testing.T) {
	c, _ := NewCart(uuid.New())
	_, _ = c.AddItem(uuid.New(), 1)
	_, _ = c.AddItem(uuid.New(), 4)
	require.Len(t, c.Items, 2)
	assert.Equal(t, 5, c.TotalQuantity())

	require.NoError(t, c.RemoveItem(c.Items[0].ID))
	assert.Len(t, c.Items, 1)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalQuantity())
}
