package cart

import (
	"context"
	"testing"

	"github.com/estuaire/backend/internal/domain/cart"
	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of cart.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItems(ctx context.Context, cartID uuid.UUID) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newActiveProduct(t *testing.T, ownerID uuid.UUID, price int64, quantity int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(ownerID, "Woven basket", valueobject.NewMoneyXOF(decimal.NewFromInt(price)), quantity, uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.SetStatus(catalog.ProductStatusActive))
	return p
}

func TestCartService_Get_CreatesEmptyCartOnFirstUse(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(cartRepo, productRepo)

	userID := uuid.New()
	cartRepo.On("FindByUser", mock.Anything, userID).Return(nil, shared.ErrNotFound)
	cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil)

	resp, err := service.Get(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.TotalAmount.IsZero())
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("adds product to cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		userID := uuid.New()
		product := newActiveProduct(t, uuid.New(), 1500, 10)

		existing, err := cart.NewCart(userID)
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindByUser", mock.Anything, userID).Return(existing, nil)
		cartRepo.On("Save", mock.Anything, existing).Return(nil)

		resp, err := service.AddItem(context.Background(), userID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  2,
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Items[0].Quantity)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(3000)))
		cartRepo.AssertExpectations(t)
	})

	t.Run("merged quantity is checked against stock", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		userID := uuid.New()
		product := newActiveProduct(t, uuid.New(), 1500, 5)

		existing, err := cart.NewCart(userID)
		require.NoError(t, err)
		_, err = existing.AddItem(product.ID, 4)
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindByUser", mock.Anything, userID).Return(existing, nil)

		_, err = service.AddItem(context.Background(), userID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  2,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects own product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		userID := uuid.New()
		product := newActiveProduct(t, userID, 1500, 10)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := service.AddItem(context.Background(), userID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  1,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		service := NewCartService(cartRepo, productRepo)

		userID := uuid.New()
		product := newActiveProduct(t, uuid.New(), 1500, 10)
		require.NoError(t, product.SetStatus(catalog.ProductStatusInactive))

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := service.AddItem(context.Background(), userID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  1,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Equal(t, "Product not found or inactive", domainErr.Message)
	})
}

func TestCartService_UpdateItem_ReplacesQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(cartRepo, productRepo)

	userID := uuid.New()
	product := newActiveProduct(t, uuid.New(), 1500, 10)

	existing, err := cart.NewCart(userID)
	require.NoError(t, err)
	_, err = existing.AddItem(product.ID, 2)
	require.NoError(t, err)
	itemID := existing.Items[0].ID

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	cartRepo.On("FindByUser", mock.Anything, userID).Return(existing, nil)
	cartRepo.On("Save", mock.Anything, existing).Return(nil)

	resp, err := service.UpdateItem(context.Background(), userID, itemID, UpdateItemRequest{Quantity: 5})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	cartRepo.AssertExpectations(t)
}

func TestCartService_Clear(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(cartRepo, productRepo)

	userID := uuid.New()
	existing, err := cart.NewCart(userID)
	require.NoError(t, err)
	_, err = existing.AddItem(uuid.New(), 2)
	require.NoError(t, err)

	cartRepo.On("FindByUser", mock.Anything, userID).Return(existing, nil)
	cartRepo.On("DeleteItems", mock.Anything, existing.ID).Return(nil)
	cartRepo.On("Save", mock.Anything, existing).Return(nil)

	require.NoError(t, service.Clear(context.Background(), userID))
	assert.True(t, existing.IsEmpty())
	cartRepo.AssertExpectations(t)
}
