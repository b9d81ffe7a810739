package order

import (
	"context"
	"errors"
	"testing"

	"github.com/estuaire/backend/internal/domain/cart"
	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/identity"
	"github.com/estuaire/backend/internal/domain/location"
	"github.com/estuaire/backend/internal/domain/notification"
	"github.com/estuaire/backend/internal/domain/order"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of order.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	args := m.Called(ctx, customerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindItemsByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.OrderItem, int64, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.OrderItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*order.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) HasPurchased(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, customerID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
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

// MockNotificationRepository is a mock implementation of notification.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]notification.Notification, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]notification.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) SaveAll(ctx context.Context, ns []*notification.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLocationRepository is a mock implementation of location.LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]location.Location, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]location.Location, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.Location), args.Error(1)
}

func (m *MockLocationRepository) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*location.Location, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) Save(ctx context.Context, loc *location.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockLocationRepository) SaveAsDefault(ctx context.Context, loc *location.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type serviceFixture struct {
	orders        *MockOrderRepository
	products      *MockProductRepository
	carts         *MockCartRepository
	notifications *MockNotificationRepository
	locations     *MockLocationRepository
	service       *OrderService
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		orders:        new(MockOrderRepository),
		products:      new(MockProductRepository),
		carts:         new(MockCartRepository),
		notifications: new(MockNotificationRepository),
		locations:     new(MockLocationRepository),
	}
	scope := NewNoOpTransactionScope(f.orders, f.products, f.carts, f.notifications)
	f.service = NewOrderService(scope, f.locations, nil)
	return f
}

func activeProduct(t *testing.T, ownerID uuid.UUID, price int64, quantity int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(ownerID, "Kente scarf", valueobject.NewMoneyXOF(decimal.NewFromInt(price)), quantity, uuid.New())
	require.NoError(t, err)
	require.NoError(t, p.SetStatus(catalog.ProductStatusActive))
	return p
}

func ownedLocation(t *testing.T, f *serviceFixture, userID uuid.UUID) uuid.UUID {
	t.Helper()
	loc, err := location.NewLocation(userID, "home", "12 Rue du Marche", "Lome", "TG")
	require.NoError(t, err)
	f.locations.On("FindByID", mock.Anything, loc.ID).Return(loc, nil)
	return loc.ID
}

func cartWith(t *testing.T, userID uuid.UUID, lines map[uuid.UUID]int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	for productID, qty := range lines {
		_, err := c.AddItem(productID, qty)
		require.NoError(t, err)
	}
	return c
}

func TestOrderServicePlace(t *testing.T) {
	ctx := context.Background()

	t.Run("places order, snapshots items and decrements stock", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		vendorID := uuid.New()
		product := activeProduct(t, vendorID, 5000, 10)
		c := cartWith(t, customerID, map[uuid.UUID]int{product.ID: 3})
		locID := ownedLocation(t, f, customerID)

		f.carts.On("FindByUser", ctx, customerID).Return(c, nil)
		f.orders.On("ExistsByNumber", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)
		f.products.On("Save", ctx, product).Return(nil)
		f.orders.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
		f.carts.On("DeleteItems", ctx, c.ID).Return(nil)
		f.notifications.On("SaveAll", ctx, mock.Anything).Return(nil)

		resp, err := f.service.Place(ctx, customerID, PlaceOrderRequest{
			DeliveryLocationID: locID,
			Notes:              "Call on arrival, gate code 4512",
		})
		require.NoError(t, err)

		assert.Equal(t, "pending", resp.Status)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(15000)))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, vendorID, resp.Items[0].VendorID)
		assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, 7, product.Quantity)
		require.NotNil(t, resp.DeliveryLocationID)
		assert.Equal(t, locID, *resp.DeliveryLocationID)
		assert.Equal(t, "Call on arrival, gate code 4512", resp.Notes)
		f.carts.AssertCalled(t, "DeleteItems", ctx, c.ID)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		c := cartWith(t, customerID, nil)
		locID := ownedLocation(t, f, customerID)
		f.carts.On("FindByUser", ctx, customerID).Return(c, nil)

		_, err := f.service.Place(ctx, customerID, PlaceOrderRequest{DeliveryLocationID: locID})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("insufficient stock aborts placement", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		product := activeProduct(t, uuid.New(), 5000, 2)
		c := cartWith(t, customerID, map[uuid.UUID]int{product.ID: 5})
		locID := ownedLocation(t, f, customerID)

		f.carts.On("FindByUser", ctx, customerID).Return(c, nil)
		f.orders.On("ExistsByNumber", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)

		_, err := f.service.Place(ctx, customerID, PlaceOrderRequest{DeliveryLocationID: locID})
		require.Error(t, err)

		var stockErr *shared.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 2, stockErr.Available)
		f.orders.AssertNotCalled(t, "Save", ctx, mock.Anything)
		f.carts.AssertNotCalled(t, "DeleteItems", ctx, mock.Anything)
	})

	t.Run("inactive product aborts placement", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		product := activeProduct(t, uuid.New(), 1000, 5)
		require.NoError(t, product.SetStatus(catalog.ProductStatusInactive))
		c := cartWith(t, customerID, map[uuid.UUID]int{product.ID: 1})
		locID := ownedLocation(t, f, customerID)

		f.carts.On("FindByUser", ctx, customerID).Return(c, nil)
		f.orders.On("ExistsByNumber", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)

		_, err := f.service.Place(ctx, customerID, PlaceOrderRequest{DeliveryLocationID: locID})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		f.orders.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("listing drained to zero reports remaining quantity", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		product := activeProduct(t, uuid.New(), 5000, 2)
		c := cartWith(t, customerID, map[uuid.UUID]int{product.ID: 2})
		locID := ownedLocation(t, f, customerID)

		// A concurrent placement bought the last units between carting
		// and checkout, flipping the listing to sold.
		require.NoError(t, product.DecrementStock(2))
		require.Equal(t, catalog.ProductStatusSold, product.Status)

		f.carts.On("FindByUser", ctx, customerID).Return(c, nil)
		f.orders.On("ExistsByNumber", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)

		_, err := f.service.Place(ctx, customerID, PlaceOrderRequest{DeliveryLocationID: locID})
		require.Error(t, err)

		var stockErr *shared.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, 2, stockErr.Requested)
		assert.Equal(t, 0, stockErr.Available)
		f.orders.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("foreign delivery location is hidden", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		loc, err := location.NewLocation(uuid.New(), "", "12 Rue du Marche", "Lome", "TG")
		require.NoError(t, err)
		f.locations.On("FindByID", ctx, loc.ID).Return(loc, nil)

		_, err = f.service.Place(ctx, customerID, PlaceOrderRequest{DeliveryLocationID: loc.ID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown delivery location is rejected", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		locID := uuid.New()
		f.locations.On("FindByID", ctx, locID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Place(ctx, customerID, PlaceOrderRequest{DeliveryLocationID: locID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.carts.AssertNotCalled(t, "FindByUser", ctx, mock.Anything)
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	placedOrder := func(t *testing.T, customerID, vendorID uuid.UUID, productID uuid.UUID) *order.Order {
		o, err := order.NewOrder("EST202603141509261234", customerID)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(productID, vendorID, "Kente scarf", 3, valueobject.NewMoneyXOF(decimal.NewFromInt(5000))))
		return o
	}

	t.Run("customer cancellation restores stock", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		vendorID := uuid.New()
		product := activeProduct(t, vendorID, 5000, 10)
		require.NoError(t, product.DecrementStock(3))
		o := placedOrder(t, customerID, vendorID, product.ID)

		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)
		f.products.On("Save", ctx, product).Return(nil)
		f.orders.On("Save", ctx, o).Return(nil)

		resp, err := f.service.UpdateStatus(ctx, customerID, identity.RoleCustomer, o.ID, UpdateStatusRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, 10, product.Quantity)
	})

	t.Run("customer may not set other statuses", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		o := placedOrder(t, customerID, uuid.New(), uuid.New())
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.UpdateStatus(ctx, customerID, identity.RoleCustomer, o.ID, UpdateStatusRequest{Status: "shipped"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("vendor on the order may set any valid status", func(t *testing.T) {
		f := newFixture()
		customerID := uuid.New()
		vendorID := uuid.New()
		o := placedOrder(t, customerID, vendorID, uuid.New())

		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.orders.On("Save", ctx, o).Return(nil)
		f.notifications.On("Save", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil)

		resp, err := f.service.UpdateStatus(ctx, vendorID, identity.RoleVendor, o.ID, UpdateStatusRequest{Status: "shipped"})
		require.NoError(t, err)
		assert.Equal(t, "shipped", resp.Status)
		f.notifications.AssertCalled(t, "Save", ctx, mock.AnythingOfType("*notification.Notification"))
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		f := newFixture()
		o := placedOrder(t, uuid.New(), uuid.New(), uuid.New())
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.UpdateStatus(ctx, uuid.New(), identity.RoleVendor, o.ID, UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invalid status names the valid set", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.UpdateStatus(ctx, uuid.New(), identity.RoleCustomer, uuid.New(), UpdateStatusRequest{Status: "refunded"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valid statuses")
	})
}

func TestOrderServiceGet(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	vendorA := uuid.New()
	vendorB := uuid.New()

	o, err := order.NewOrder("EST202603141509261234", customerID)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(uuid.New(), vendorA, "Scarf", 1, valueobject.NewMoneyXOF(decimal.NewFromInt(100))))
	require.NoError(t, o.AddItem(uuid.New(), vendorB, "Basket", 1, valueobject.NewMoneyXOF(decimal.NewFromInt(200))))

	t.Run("customer sees all items", func(t *testing.T) {
		f := newFixture()
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		resp, err := f.service.Get(ctx, customerID, identity.RoleCustomer, o.ID)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
	})

	t.Run("vendor sees only their items", func(t *testing.T) {
		f := newFixture()
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		resp, err := f.service.Get(ctx, vendorA, identity.RoleVendor, o.ID)
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, vendorA, resp.Items[0].VendorID)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		f := newFixture()
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		_, err := f.service.Get(ctx, uuid.New(), identity.RoleCustomer, o.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
