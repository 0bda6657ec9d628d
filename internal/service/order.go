package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
	// UpdateOrderStatus moves the order only if it is still in status from,
	// otherwise returns entities.ErrStatusConflict.
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type StockRepo interface {
	ProductReader
	// ReserveStock decrements stock only when enough units are left,
	// otherwise returns entities.ErrInsufficientStock.
	ReserveStock(ctx context.Context, productID string, quantity int) error
	ReleaseStock(ctx context.Context, productID string, quantity int) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type Locker interface {
	Lock(keys ...string) (unlock func())
}

// PublishTimeout bounds delivery of a single order event. Events are sent
// after commit and do not share the caller's deadline.
var PublishTimeout = 10 * time.Second

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	stock     StockRepo
	coupons   CouponValidator
	stores    StoreReader
	products  Cache
	publisher EventPublisher
	locker    Locker
	validator *OrderValidator
	guard     TransitionGuard
	now       func() time.Time
}

// NewOrderService wires the order workflow. products is the catalog cache,
// entries are dropped whenever an order moves stock.
func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	stock StockRepo,
	coupons CouponValidator,
	stores StoreReader,
	products Cache,
	publisher EventPublisher,
	locker Locker,
	guard TransitionGuard,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		stock:     stock,
		coupons:   coupons,
		stores:    stores,
		products:  products,
		publisher: publisher,
		locker:    locker,
		validator: NewOrderValidator(NewStockChecker(stock)),
		guard:     guard,
		now:       time.Now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, id entities.Identity, draft entities.Order) (entities.Order, error) {
	if err := auth.Authorize(id, "create order"); err != nil {
		return entities.Order{}, err
	}

	unlock := s.locker.Lock(productIDs(draft.Items)...)
	defer unlock()

	order, err := s.prepare(ctx, draft)
	if err != nil {
		ordersRejected.WithLabelValues(string(entities.CodeOf(err))).Inc()
		return entities.Order{}, err
	}

	now := s.now().UTC()
	order.ID = uuid.NewString()
	order.UserID = id.Subject
	order.Status = entities.StatusCreated
	order.CreatedAt = now
	order.UpdatedAt = now

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, line := range mergeLines(order.Items) {
			if err := s.reserve(ctx, line); err != nil {
				return err
			}
		}
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		return nil
	})
	if err != nil {
		ordersRejected.WithLabelValues(string(entities.CodeOf(err))).Inc()
		return entities.Order{}, err
	}
	s.invalidate(order.Items)

	ordersCreated.Inc()
	s.logger.Info("order created", slog.String("order_id", order.ID), slog.String("user_id", order.UserID))
	s.publish(ctx, entities.OrderEvent{
		Type:       entities.EventOrderCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		To:         order.Status,
		Total:      order.AmountDue().StringFixed(2),
		OccurredAt: now,
	})
	return order, nil
}

// prepare validates the draft, checks the quoted prices against the catalog
// and derives the discount from the coupon.
func (s *orderService) prepare(ctx context.Context, draft entities.Order) (entities.Order, error) {
	if err := s.validator.ValidateOrderCreation(ctx, draft); err != nil {
		return entities.Order{}, err
	}
	if err := s.checkPrices(ctx, draft.Items); err != nil {
		return entities.Order{}, err
	}

	order := draft
	order.CouponCode = ""
	order.Discount = decimal.Zero
	if draft.CouponCode == "" {
		if !draft.Discount.IsZero() {
			return entities.Order{}, entities.ErrInvalidDiscount
		}
		return order, nil
	}

	coupon := s.coupons.ValidateCoupon(ctx, draft.CouponCode)
	if !coupon.Valid {
		return entities.Order{}, entities.ErrInvalidCoupon
	}
	discount, err := ApplyDiscount(draft.Total, coupon.Discount)
	if err != nil {
		return entities.Order{}, err
	}
	if !draft.Discount.IsZero() && !draft.Discount.Equal(discount) {
		return entities.Order{}, entities.ErrInvalidDiscount
	}
	order.CouponCode = coupon.Code
	order.Discount = discount
	return order, nil
}

// checkPrices requires every line to carry the current catalog price.
func (s *orderService) checkPrices(ctx context.Context, items []entities.LineItem) error {
	prices := make(map[string]decimal.Decimal, len(items))
	for i, it := range items {
		price, ok := prices[it.ProductID]
		if !ok {
			p, err := s.stock.GetProduct(ctx, it.ProductID)
			if errors.Is(err, entities.ErrProductNotFound) {
				return entities.ProductNotFound(it.ProductID)
			}
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}
			price = p.Price
			prices[it.ProductID] = price
		}
		if !it.UnitPrice.Equal(price) {
			return entities.InvalidLineItem(i, "unit price does not match product price "+price.StringFixed(2))
		}
	}
	return nil
}

func (s *orderService) reserve(ctx context.Context, line entities.LineItem) error {
	err := s.stock.ReserveStock(ctx, line.ProductID, line.Quantity)
	if errors.Is(err, entities.ErrInsufficientStock) {
		p, gerr := s.stock.GetProduct(ctx, line.ProductID)
		if gerr != nil {
			return err
		}
		return entities.InsufficientStock(line.ProductID, line.Quantity, p.Stock)
	}
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id entities.Identity, orderID string) (entities.Order, error) {
	if err := auth.Authorize(id, "view order"); err != nil {
		return entities.Order{}, err
	}
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := auth.AuthorizeOwner(id, order.UserID, "view order", entities.RoleAdmin); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, id entities.Identity, userID string, limit, offset int) ([]entities.Order, error) {
	if userID == "" {
		userID = id.Subject
	}
	if err := auth.AuthorizeOwner(id, userID, "list orders", entities.RoleAdmin); err != nil {
		return nil, err
	}
	return s.orders.ListOrdersByUser(ctx, userID, limit, offset)
}

// UpdateStatus is open to admins and sellers. Customers may only cancel
// their own orders, and only before payment.
func (s *orderService) UpdateStatus(ctx context.Context, id entities.Identity, orderID string, to entities.OrderStatus) (entities.Order, error) {
	if err := auth.Authorize(id, "update order status"); err != nil {
		return entities.Order{}, err
	}
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	switch {
	case id.IsAdmin():
	case order.UserID == id.Subject && to == entities.StatusCancelled && order.Status == entities.StatusCreated:
	default:
		ok, err := s.sellsIn(ctx, id, order)
		if err != nil {
			return entities.Order{}, err
		}
		if !ok {
			return entities.Order{}, entities.UnauthorizedAccess("update order status")
		}
	}

	return s.transition(ctx, order, to)
}

// sellsIn reports whether the order holds a product from a store owned by
// the seller.
func (s *orderService) sellsIn(ctx context.Context, id entities.Identity, order entities.Order) (bool, error) {
	if !id.HasRole(entities.RoleSeller) {
		return false, nil
	}
	owned := make(map[string]bool)
	for _, line := range mergeLines(order.Items) {
		p, err := s.stock.GetProduct(ctx, line.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to get product: %w", err)
		}

		mine, seen := owned[p.StoreID]
		if !seen {
			store, err := s.stores.GetStore(ctx, p.StoreID)
			switch {
			case errors.Is(err, entities.ErrStoreNotFound):
			case err != nil:
				return false, fmt.Errorf("failed to get store: %w", err)
			default:
				mine = store.OwnerID == id.Subject
			}
			owned[p.StoreID] = mine
		}
		if mine {
			return true, nil
		}
	}
	return false, nil
}

// MarkPaid settles an order after the payment gateway confirmed amount.
// A repeated notification for an already paid order is a no-op.
func (s *orderService) MarkPaid(ctx context.Context, orderID string, amount decimal.Decimal) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.AmountDue().Equal(amount) {
		return entities.ErrPaymentMismatch
	}
	_, err = s.transition(ctx, order, entities.StatusPaid)
	return err
}

func (s *orderService) DeleteOrder(ctx context.Context, id entities.Identity, orderID string) error {
	if err := auth.Authorize(id, "delete order", entities.RoleAdmin); err != nil {
		return err
	}
	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.logger.Info("order deleted", slog.String("order_id", orderID), slog.String("by", id.Subject))
	return nil
}

func (s *orderService) transition(ctx context.Context, order entities.Order, to entities.OrderStatus) (entities.Order, error) {
	if err := s.guard.Check(order.ID, order.Status, to); err != nil {
		return entities.Order{}, err
	}
	if order.Status == to {
		return order, nil
	}

	from := order.Status
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateOrderStatus(ctx, order.ID, from, to); err != nil {
			return err
		}
		if !releasesStock(to) {
			return nil
		}
		for _, line := range mergeLines(order.Items) {
			if err := s.stock.ReleaseStock(ctx, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("failed to release stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	if releasesStock(to) {
		s.invalidate(order.Items)
	}

	order.Status = to
	order.UpdatedAt = s.now().UTC()
	statusTransitions.WithLabelValues(string(from), string(to)).Inc()
	s.logger.Info("order status changed",
		slog.String("order_id", order.ID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
	s.publish(ctx, entities.OrderEvent{
		Type:       entities.EventOrderStatusChanged,
		OrderID:    order.ID,
		UserID:     order.UserID,
		From:       from,
		To:         to,
		Total:      order.AmountDue().StringFixed(2),
		OccurredAt: order.UpdatedAt,
	})
	return order, nil
}

func releasesStock(to entities.OrderStatus) bool {
	return to == entities.StatusCancelled || to == entities.StatusRefunded
}

// invalidate drops cached catalog entries whose stock was just changed.
func (s *orderService) invalidate(items []entities.LineItem) {
	for _, line := range mergeLines(items) {
		s.products.Delete(line.ProductID)
	}
}

// publish is best effort: the order is already committed. The event keeps
// its own deadline so a closed request does not abort delivery.
func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
