package persistence

import (
	"context"
	"errors"
	"testing"

	apporder "github.com/estuaire/backend/internal/application/order"
	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/order"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOrderScopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&order.Order{},
		&order.OrderItem{},
	)
	require.NoError(t, err)

	return db
}

func seedTestProduct(t *testing.T, db *gorm.DB, quantity int) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(
		uuid.New(),
		"Woven basket",
		valueobject.NewMoneyXOF(decimal.NewFromInt(1500)),
		quantity,
		uuid.New(),
	)
	require.NoError(t, err)
	require.NoError(t, product.SetStatus(catalog.ProductStatusActive))
	require.NoError(t, db.Save(product).Error)

	return product
}

func TestGormOrderTransactionScope_Commit(t *testing.T) {
	db := setupOrderScopeTestDB(t)
	scope := NewGormOrderTransactionScope(db)
	ctx := context.Background()

	product := seedTestProduct(t, db, 5)
	customerID := uuid.New()

	err := scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		locked, err := repos.Products().FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := locked.DecrementStock(2); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, locked); err != nil {
			return err
		}

		o, err := order.NewOrder("ORD-TEST-0001", customerID)
		if err != nil {
			return err
		}
		if err := o.AddItem(product.ID, product.OwnerID, product.Name, 2, product.Price); err != nil {
			return err
		}
		return repos.Orders().Save(ctx, o)
	})
	require.NoError(t, err)

	var persisted catalog.Product
	require.NoError(t, db.First(&persisted, "id = ?", product.ID).Error)
	assert.Equal(t, 3, persisted.Quantity)

	var orderCount int64
	require.NoError(t, db.Model(&order.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestGormOrderRepository_HasPurchased(t *testing.T) {
	db := setupOrderScopeTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	product := seedTestProduct(t, db, 5)
	customerID := uuid.New()

	placeOrder := func(t *testing.T, number string) *order.Order {
		t.Helper()
		o, err := order.NewOrder(number, customerID)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(product.ID, product.OwnerID, product.Name, 1, product.Price))
		require.NoError(t, repo.Save(ctx, o))
		return o
	}

	t.Run("no orders", func(t *testing.T) {
		bought, err := repo.HasPurchased(ctx, customerID, product.ID)
		require.NoError(t, err)
		assert.False(t, bought)
	})

	t.Run("cancelled order does not count", func(t *testing.T) {
		o := placeOrder(t, "ORD-TEST-1001")
		require.NoError(t, o.SetStatus(order.OrderStatusCancelled))
		require.NoError(t, repo.Save(ctx, o))

		bought, err := repo.HasPurchased(ctx, customerID, product.ID)
		require.NoError(t, err)
		assert.False(t, bought)
	})

	t.Run("live order counts", func(t *testing.T) {
		placeOrder(t, "ORD-TEST-1002")

		bought, err := repo.HasPurchased(ctx, customerID, product.ID)
		require.NoError(t, err)
		assert.True(t, bought)

		bought, err = repo.HasPurchased(ctx, uuid.New(), product.ID)
		require.NoError(t, err)
		assert.False(t, bought)
	})
}

func TestGormOrderTransactionScope_Rollback(t *testing.T) {
	db := setupOrderScopeTestDB(t)
	scope := NewGormOrderTransactionScope(db)
	ctx := context.Background()

	product := seedTestProduct(t, db, 5)
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		locked, err := repos.Products().FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := locked.DecrementStock(5); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, locked); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var persisted catalog.Product
	require.NoError(t, db.First(&persisted, "id = ?", product.ID).Error)
	assert.Equal(t, 5, persisted.Quantity)

	var orderCount int64
	require.NoError(t, db.Model(&order.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(0), orderCount)
}
