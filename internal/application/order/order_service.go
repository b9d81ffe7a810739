package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/identity"
	"github.com/estuaire/backend/internal/domain/location"
	"github.com/estuaire/backend/internal/domain/notification"
	"github.com/estuaire/backend/internal/domain/order"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const numberRetries = 5

// OrderService handles order placement and lifecycle operations
type OrderService struct {
	scope        TransactionScope
	locationRepo location.LocationRepository
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, locationRepo location.LocationRepository, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		scope:        scope,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Place converts the customer's cart into an order inside one
// transaction: product rows are locked, stock is re-validated against
// the locked rows, item snapshots are taken, stock is decremented and
// the cart emptied. Any failure rolls the whole placement back.
func (s *OrderService) Place(ctx context.Context, customerID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	loc, err := s.locationRepo.FindByID(ctx, req.DeliveryLocationID)
	if err != nil {
		return nil, err
	}
	if !loc.BelongsTo(customerID) {
		return nil, shared.ErrNotFound
	}

	var placed *order.Order
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		c, err := repos.Carts().FindByUser(ctx, customerID)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return shared.NewDomainError("INVALID_STATE", "Cart is empty")
		}

		number, err := s.uniqueNumber(ctx, repos)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(number, customerID)
		if err != nil {
			return err
		}
		o.DeliveryLocationID = &req.DeliveryLocationID
		o.DeliveryOptionID = req.DeliveryOptionID
		o.Notes = req.Notes

		// Lock products in a stable order so concurrent placements
		// touching the same listings cannot deadlock.
		items := make([]struct {
			productID uuid.UUID
			quantity  int
		}, len(c.Items))
		for i := range c.Items {
			items[i].productID = c.Items[i].ProductID
			items[i].quantity = c.Items[i].Quantity
		}
		sort.Slice(items, func(i, j int) bool {
			return items[i].productID.String() < items[j].productID.String()
		})

		for _, item := range items {
			product, err := repos.Products().FindByIDForUpdate(ctx, item.productID)
			if err != nil {
				return err
			}
			// Stock first: a listing drained to zero reads as sold,
			// which is a stock condition, not an availability one.
			if !product.IsAvailable(item.quantity) {
				return shared.NewInsufficientStockError(product.ID, product.Name, item.quantity, product.Quantity)
			}
			if !product.IsActive() && product.Status != catalog.ProductStatusSold {
				return shared.NewDomainError("INVALID_STATE",
					fmt.Sprintf("product %q is no longer available", product.Name))
			}
			if err := product.DecrementStock(item.quantity); err != nil {
				return err
			}
			if err := o.AddItem(product.ID, product.OwnerID, product.Name, item.quantity, product.Price); err != nil {
				return err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
		}

		if err := repos.Orders().Save(ctx, o); err != nil {
			return err
		}
		if err := repos.Carts().DeleteItems(ctx, c.ID); err != nil {
			return err
		}
		if err := s.notifyPlacement(ctx, repos, o); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_number", placed.Number),
		zap.String("customer_id", placed.CustomerID.String()),
		zap.Int("items", len(placed.Items)),
		zap.String("total", placed.TotalAmount.String()),
	)
	resp := ToOrderResponse(placed)
	return &resp, nil
}

// Get returns one order. Customers see their own orders in full,
// vendors see orders containing their items with the item list scoped
// to them, anyone else gets a not-found.
func (s *OrderService) Get(ctx context.Context, userID uuid.UUID, role identity.UserRole, orderID uuid.UUID) (*OrderResponse, error) {
	var resp OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		switch {
		case o.BelongsTo(userID):
			resp = ToOrderResponse(o)
		case role == identity.RoleVendor && o.HasVendor(userID):
			resp = ToVendorOrderResponse(o, userID)
		default:
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns role-scoped orders: customers get their own orders,
// vendors get orders containing at least one of their items with the
// items filtered to their own.
func (s *OrderService) List(ctx context.Context, userID uuid.UUID, role identity.UserRole, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}

	var page shared.Paginated[OrderResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var (
			orders []order.Order
			total  int64
			err    error
		)
		if role == identity.RoleVendor {
			orders, total, err = repos.Orders().FindByVendor(ctx, userID, domainFilter)
		} else {
			orders, total, err = repos.Orders().FindByCustomer(ctx, userID, domainFilter)
		}
		if err != nil {
			return err
		}

		responses := make([]OrderResponse, len(orders))
		for i := range orders {
			if role == identity.RoleVendor && !orders[i].BelongsTo(userID) {
				responses[i] = ToVendorOrderResponse(&orders[i], userID)
			} else {
				responses[i] = ToOrderResponse(&orders[i])
			}
		}
		page = shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateStatus moves an order to a new status. A customer may only
// cancel their own order; a vendor with at least one item on the order
// may set any valid status. Cancellation returns decremented stock to
// tracked products inside the same transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, userID uuid.UUID, role identity.UserRole, orderID uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	newStatus := order.OrderStatus(req.Status)
	if !order.IsValidOrderStatus(newStatus) {
		return nil, order.InvalidStatusError(newStatus)
	}

	var updated *order.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		isCustomer := o.BelongsTo(userID)
		isVendor := role == identity.RoleVendor && o.HasVendor(userID)
		switch {
		case isVendor:
			// any valid status
		case isCustomer:
			if newStatus != order.OrderStatusCancelled {
				return shared.NewDomainError("FORBIDDEN", "Customers may only cancel their orders")
			}
		default:
			return shared.ErrNotFound
		}

		wasCancelled := o.IsCancelled()
		if err := o.SetStatus(newStatus); err != nil {
			return err
		}

		if newStatus == order.OrderStatusCancelled && !wasCancelled {
			if err := s.restoreStock(ctx, repos, o); err != nil {
				return err
			}
		}

		if err := repos.Orders().Save(ctx, o); err != nil {
			return err
		}
		if err := s.notifyStatusChange(ctx, repos, o, userID); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_number", updated.Number),
		zap.String("status", string(updated.Status)),
	)
	resp := ToOrderResponse(updated)
	return &resp, nil
}

// MySales returns the vendor's sold line items across all orders
func (s *OrderService) MySales(ctx context.Context, vendorID uuid.UUID, filter OrderListFilter) (*shared.Paginated[SaleItemResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var page shared.Paginated[SaleItemResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		items, total, err := repos.Orders().FindItemsByVendor(ctx, vendorID, domainFilter)
		if err != nil {
			return err
		}
		sales := make([]SaleItemResponse, len(items))
		for i := range items {
			sales[i] = SaleItemResponse{
				OrderItemResponse: ToOrderItemResponse(&items[i]),
				OrderID:           items[i].OrderID,
				SoldAt:            items[i].CreatedAt,
			}
		}
		page = shared.NewPaginated(sales, total, domainFilter.Page, domainFilter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *OrderService) uniqueNumber(ctx context.Context, repos TransactionalRepositories) (string, error) {
	for range numberRetries {
		number := order.GenerateOrderNumber(time.Now())
		exists, err := repos.Orders().ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", shared.ErrTransient
}

// restoreStock returns each tracked item's quantity to its product,
// locking the rows the same way placement does.
func (s *OrderService) restoreStock(ctx context.Context, repos TransactionalRepositories, o *order.Order) error {
	items := make([]order.OrderItem, len(o.Items))
	copy(items, o.Items)
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID.String() < items[j].ProductID.String()
	})

	for i := range items {
		product, err := repos.Products().FindByIDForUpdate(ctx, items[i].ProductID)
		if err != nil {
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code {
				// Listing deleted since placement, nothing to restore.
				continue
			}
			return err
		}
		if err := product.RestoreStock(items[i].Quantity); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) notifyPlacement(ctx context.Context, repos TransactionalRepositories, o *order.Order) error {
	notifications := make([]*notification.Notification, 0, len(o.Items)+1)

	n, err := notification.NewNotification(o.CustomerID, notification.TypeOrderPlaced,
		"Order placed", fmt.Sprintf("Your order %s has been placed.", o.Number))
	if err != nil {
		return err
	}
	n.AttachOrder(o.ID)
	notifications = append(notifications, n)

	seen := make(map[uuid.UUID]bool)
	for i := range o.Items {
		vendorID := o.Items[i].VendorID
		if seen[vendorID] {
			continue
		}
		seen[vendorID] = true
		vn, err := notification.NewNotification(vendorID, notification.TypeOrderPlaced,
			"New sale", fmt.Sprintf("Order %s contains your products.", o.Number))
		if err != nil {
			return err
		}
		vn.AttachOrder(o.ID)
		notifications = append(notifications, vn)
	}

	return repos.Notifications().SaveAll(ctx, notifications)
}

func (s *OrderService) notifyStatusChange(ctx context.Context, repos TransactionalRepositories, o *order.Order, actorID uuid.UUID) error {
	if o.CustomerID == actorID {
		return nil
	}
	n, err := notification.NewNotification(o.CustomerID, notification.TypeOrderStatus,
		"Order update", fmt.Sprintf("Your order %s is now %s.", o.Number, o.Status))
	if err != nil {
		return err
	}
	n.AttachOrder(o.ID)
	return repos.Notifications().Save(ctx, n)
}
