package service_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-service/pkg/lock"
	txMocks "github.com/SergeyBogomolovv/shop-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passThroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

type orderMocks struct {
	orders  *mocks.MockOrderRepo
	stock   *mocks.MockStockRepo
	coupons *mocks.MockCouponValidator
	stores  *mocks.MockStoreReader
	cache   *mocks.MockCache
	events  *mocks.MockEventPublisher
}

func newOrderMocks(t *testing.T) orderMocks {
	return orderMocks{
		orders:  mocks.NewMockOrderRepo(t),
		stock:   mocks.NewMockStockRepo(t),
		coupons: mocks.NewMockCouponValidator(t),
		stores:  mocks.NewMockStoreReader(t),
		cache:   mocks.NewMockCache(t),
		events:  mocks.NewMockEventPublisher(t),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(m orderMocks)

	dbError := errors.New("db error")
	draft := entities.Order{
		Items: []entities.LineItem{line("A", 3, "10.00"), line("B", 1, "5.00")},
		Total: dec("35.00"),
	}
	withCoupon := func(code string, discount string) entities.Order {
		o := draft
		o.CouponCode = code
		if discount != "" {
			o.Discount = dec(discount)
		}
		return o
	}
	inStock := func(stock *mocks.MockStockRepo) {
		stock.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A", Price: dec("10.00"), Stock: 5}, nil).Maybe()
		stock.EXPECT().GetProduct(mock.Anything, "B").Return(entities.Product{ID: "B", Price: dec("5.00"), Stock: 1}, nil).Maybe()
	}
	reserved := func(m orderMocks) {
		m.stock.EXPECT().ReserveStock(mock.Anything, "A", 3).Return(nil)
		m.stock.EXPECT().ReserveStock(mock.Anything, "B", 1).Return(nil)
		m.cache.EXPECT().Delete("A").Return().Once()
		m.cache.EXPECT().Delete("B").Return().Once()
	}
	spring := entities.CouponResult{Code: "SPRING10", Valid: true, Discount: dec("10")}

	testCases := []struct {
		name         string
		identity     entities.Identity
		draft        entities.Order
		mockBehavior MockBehavior
		wantDiscount string
		wantErr      error
	}{
		{
			name:     "OK",
			identity: customer,
			draft:    draft,
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				reserved(m)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.UserID == customer.Subject && o.Status == entities.StatusCreated && o.ID != ""
				})).Return(nil)
				m.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.Type == entities.EventOrderCreated && e.Total == "35.00"
				})).Return(nil)
			},
			wantDiscount: "0.00",
		},
		{
			name:     "coupon sets the discount",
			identity: customer,
			draft:    withCoupon("spring10", ""),
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				m.coupons.EXPECT().ValidateCoupon(mock.Anything, "spring10").Return(spring)
				reserved(m)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.CouponCode == "SPRING10" && o.Discount.Equal(dec("3.50"))
				})).Return(nil)
				m.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.Total == "31.50"
				})).Return(nil)
			},
			wantDiscount: "3.50",
		},
		{
			name:     "discount matching the coupon",
			identity: customer,
			draft:    withCoupon("SPRING10", "3.50"),
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				m.coupons.EXPECT().ValidateCoupon(mock.Anything, "SPRING10").Return(spring)
				reserved(m)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantDiscount: "3.50",
		},
		{
			name:     "discount without coupon",
			identity: customer,
			draft:    withCoupon("", "5.00"),
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
			},
			wantErr: entities.ErrInvalidDiscount,
		},
		{
			name:     "discount above coupon",
			identity: customer,
			draft:    withCoupon("SPRING10", "35.00"),
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				m.coupons.EXPECT().ValidateCoupon(mock.Anything, "SPRING10").Return(spring)
			},
			wantErr: entities.ErrInvalidDiscount,
		},
		{
			name:     "invalid coupon",
			identity: customer,
			draft:    withCoupon("EXPIRED", ""),
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				m.coupons.EXPECT().ValidateCoupon(mock.Anything, "EXPIRED").
					Return(entities.CouponResult{Code: "EXPIRED"})
			},
			wantErr: entities.ErrInvalidCoupon,
		},
		{
			name:     "unit price below catalog price",
			identity: customer,
			draft: entities.Order{
				Items: []entities.LineItem{line("A", 3, "1.00"), line("B", 1, "5.00")},
				Total: dec("8.00"),
			},
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
			},
			wantErr: entities.ErrInvalidLineItem,
		},
		{
			name:     "publish failure does not fail the order",
			identity: customer,
			draft:    draft,
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				reserved(m)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("kafka down"))
			},
			wantDiscount: "0.00",
		},
		{
			name:         "anonymous",
			identity:     entities.Identity{},
			draft:        draft,
			mockBehavior: func(orderMocks) {},
			wantErr:      entities.ErrUnauthenticated,
		},
		{
			name:         "inactive",
			identity:     entities.Identity{Subject: "user-1", Roles: []entities.Role{entities.RoleCustomer}},
			draft:        draft,
			mockBehavior: func(orderMocks) {},
			wantErr:      entities.ErrInactiveAccount,
		},
		{
			name:         "empty",
			identity:     customer,
			draft:        entities.Order{},
			mockBehavior: func(orderMocks) {},
			wantErr:      entities.ErrEmptyOrder,
		},
		{
			name:     "total mismatch",
			identity: customer,
			draft:    entities.Order{Items: draft.Items, Total: dec("36.00")},
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
			},
			wantErr: entities.ErrTotalMismatch,
		},
		{
			name:     "stock taken between check and reserve",
			identity: customer,
			draft:    draft,
			mockBehavior: func(m orderMocks) {
				m.stock.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A", Price: dec("10.00"), Stock: 5}, nil).Times(2)
				m.stock.EXPECT().GetProduct(mock.Anything, "B").Return(entities.Product{ID: "B", Price: dec("5.00"), Stock: 1}, nil).Times(2)
				m.stock.EXPECT().ReserveStock(mock.Anything, "A", 3).Return(nil)
				m.stock.EXPECT().ReserveStock(mock.Anything, "B", 1).Return(entities.ErrInsufficientStock)
				m.stock.EXPECT().GetProduct(mock.Anything, "B").Return(entities.Product{ID: "B", Price: dec("5.00"), Stock: 0}, nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:     "save fails",
			identity: customer,
			draft:    draft,
			mockBehavior: func(m orderMocks) {
				inStock(m.stock)
				m.stock.EXPECT().ReserveStock(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)

			svc := service.NewOrderService(discardLogger(), passThroughTx(t), m.orders, m.stock, m.coupons, m.stores, m.cache,
				m.events, lock.NewKeyed(), service.DefaultTransitionGuard())
			got, err := svc.CreateOrder(context.Background(), tc.identity, tc.draft)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCreated, got.Status)
			assert.Equal(t, tc.identity.Subject, got.UserID)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tc.wantDiscount, got.Discount.StringFixed(2))
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	type MockBehavior func(m orderMocks)

	order := func(status entities.OrderStatus) entities.Order {
		return entities.Order{
			ID:     "order-1",
			UserID: customer.Subject,
			Status: status,
			Items:  []entities.LineItem{line("A", 2, "10.00")},
			Total:  dec("20.00"),
		}
	}
	soldBy := func(m orderMocks, owner string) {
		m.stock.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A", StoreID: "store-1"}, nil).Once()
		m.stores.EXPECT().GetStore(mock.Anything, "store-1").Return(entities.Store{ID: "store-1", OwnerID: owner}, nil).Once()
	}

	testCases := []struct {
		name         string
		identity     entities.Identity
		to           entities.OrderStatus
		mockBehavior MockBehavior
		wantStatus   entities.OrderStatus
		wantErr      error
	}{
		{
			name:     "seller ships paid order",
			identity: seller,
			to:       entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
				soldBy(m, seller.Subject)
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusPaid, entities.StatusShipped).Return(nil)
				m.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.Type == entities.EventOrderStatusChanged && e.From == entities.StatusPaid && e.To == entities.StatusShipped
				})).Return(nil)
			},
			wantStatus: entities.StatusShipped,
		},
		{
			name:     "seller of another store",
			identity: seller,
			to:       entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
				soldBy(m, "seller-2")
			},
			wantErr: entities.ErrUnauthorizedAccess,
		},
		{
			name:     "seller with deleted store",
			identity: seller,
			to:       entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
				m.stock.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A", StoreID: "store-1"}, nil).Once()
				m.stores.EXPECT().GetStore(mock.Anything, "store-1").Return(entities.Store{}, entities.ErrStoreNotFound).Once()
			},
			wantErr: entities.ErrUnauthorizedAccess,
		},
		{
			name:     "admin refund releases stock",
			identity: admin,
			to:       entities.StatusRefunded,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusPaid, entities.StatusRefunded).Return(nil)
				m.stock.EXPECT().ReleaseStock(mock.Anything, "A", 2).Return(nil)
				m.cache.EXPECT().Delete("A").Return().Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: entities.StatusRefunded,
		},
		{
			name:     "owner cancels",
			identity: customer,
			to:       entities.StatusCancelled,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusCreated), nil)
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusCreated, entities.StatusCancelled).Return(nil)
				m.stock.EXPECT().ReleaseStock(mock.Anything, "A", 2).Return(nil)
				m.cache.EXPECT().Delete("A").Return().Once()
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			name:     "owner cannot ship",
			identity: customer,
			to:       entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
			},
			wantErr: entities.ErrUnauthorizedAccess,
		},
		{
			name:     "owner cannot cancel paid order",
			identity: customer,
			to:       entities.StatusCancelled,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
			},
			wantErr: entities.ErrUnauthorizedAccess,
		},
		{
			name:     "stranger cannot cancel",
			identity: stranger,
			to:       entities.StatusCancelled,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusCreated), nil)
			},
			wantErr: entities.ErrUnauthorizedAccess,
		},
		{
			name:     "terminal order",
			identity: admin,
			to:       entities.StatusPaid,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusDelivered), nil)
			},
			wantErr: entities.ErrOrderAlreadyProcessed,
		},
		{
			name:     "illegal transition",
			identity: admin,
			to:       entities.StatusDelivered,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusCreated), nil)
			},
			wantErr: entities.ErrInvalidStatusTransition,
		},
		{
			name:     "same status is a no-op",
			identity: admin,
			to:       entities.StatusPaid,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name:     "concurrent change",
			identity: admin,
			to:       entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order(entities.StatusPaid), nil)
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusPaid, entities.StatusShipped).
					Return(entities.ErrStatusConflict)
			},
			wantErr: entities.ErrStatusConflict,
		},
		{
			name:     "missing order",
			identity: admin,
			to:       entities.StatusShipped,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)

			svc := service.NewOrderService(discardLogger(), passThroughTx(t), m.orders, m.stock, m.coupons, m.stores, m.cache,
				m.events, lock.NewKeyed(), service.DefaultTransitionGuard())
			got, err := svc.UpdateStatus(context.Background(), tc.identity, "order-1", tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestOrderService_MarkPaid(t *testing.T) {
	created := entities.Order{
		ID:       "order-1",
		UserID:   customer.Subject,
		Status:   entities.StatusCreated,
		Items:    []entities.LineItem{line("A", 1, "100.00")},
		Total:    dec("100.00"),
		Discount: dec("10.00"),
	}

	testCases := []struct {
		name         string
		amount       string
		status       entities.OrderStatus
		mockBehavior func(m orderMocks)
		wantErr      error
	}{
		{
			name:   "OK",
			amount: "90",
			status: entities.StatusCreated,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusCreated, entities.StatusPaid).Return(nil)
				m.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:         "amount ignores discount",
			amount:       "100",
			status:       entities.StatusCreated,
			mockBehavior: func(orderMocks) {},
			wantErr:      entities.ErrPaymentMismatch,
		},
		{
			name:         "already paid",
			amount:       "90",
			status:       entities.StatusPaid,
			mockBehavior: func(orderMocks) {},
		},
		{
			name:         "cancelled order",
			amount:       "90",
			status:       entities.StatusCancelled,
			mockBehavior: func(orderMocks) {},
			wantErr:      entities.ErrOrderAlreadyProcessed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)

			o := created
			o.Status = tc.status
			m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(o, nil)
			tc.mockBehavior(m)

			svc := service.NewOrderService(discardLogger(), passThroughTx(t), m.orders, m.stock, m.coupons, m.stores, m.cache,
				m.events, lock.NewKeyed(), service.DefaultTransitionGuard())
			err := svc.MarkPaid(context.Background(), "order-1", dec(tc.amount))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_EventOutlivesRequest(t *testing.T) {
	m := newOrderMocks(t)
	m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(entities.Order{
		ID:     "order-1",
		UserID: customer.Subject,
		Status: entities.StatusCreated,
		Items:  []entities.LineItem{line("A", 1, "10.00")},
		Total:  dec("10.00"),
	}, nil)
	m.orders.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.StatusCreated, entities.StatusPaid).Return(nil)
	m.events.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entities.OrderEvent) error {
			assert.NoError(t, ctx.Err())
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(service.PublishTimeout), deadline, time.Second)
			return nil
		}).Once()

	svc := service.NewOrderService(discardLogger(), passThroughTx(t), m.orders, m.stock, m.coupons, m.stores, m.cache,
		m.events, lock.NewKeyed(), service.DefaultTransitionGuard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, svc.MarkPaid(ctx, "order-1", dec("10.00")))
}

func TestOrderService_GetAndList(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passThroughTx(t), m.orders, m.stock, m.coupons, m.stores, m.cache,
		m.events, lock.NewKeyed(), service.DefaultTransitionGuard())

	owned := entities.Order{ID: "order-1", UserID: customer.Subject}
	m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(owned, nil)

	got, err := svc.GetOrder(context.Background(), customer, "order-1")
	require.NoError(t, err)
	assert.Equal(t, owned.ID, got.ID)

	_, err = svc.GetOrder(context.Background(), stranger, "order-1")
	assert.ErrorIs(t, err, entities.ErrUnauthorizedAccess)

	_, err = svc.GetOrder(context.Background(), admin, "order-1")
	assert.NoError(t, err)

	m.orders.EXPECT().ListOrdersByUser(mock.Anything, customer.Subject, 20, 0).Return([]entities.Order{owned}, nil).Twice()

	list, err := svc.ListOrders(context.Background(), customer, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListOrders(context.Background(), admin, customer.Subject, 20, 0)
	assert.NoError(t, err)

	_, err = svc.ListOrders(context.Background(), stranger, customer.Subject, 20, 0)
	assert.ErrorIs(t, err, entities.ErrUnauthorizedAccess)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	m := newOrderMocks(t)
	svc := service.NewOrderService(discardLogger(), passThroughTx(t), m.orders, m.stock, m.coupons, m.stores, m.cache,
		m.events, lock.NewKeyed(), service.DefaultTransitionGuard())

	assert.ErrorIs(t, svc.DeleteOrder(context.Background(), customer, "order-1"), entities.ErrUnauthorizedAccess)

	m.orders.EXPECT().DeleteOrder(mock.Anything, "order-1").Return(nil)
	assert.NoError(t, svc.DeleteOrder(context.Background(), admin, "order-1"))
}

// memStock keeps product stock in memory. Reads and writes are separate
// critical sections, so check-then-set is not atomic on its own.
type memStock struct {
	mu       sync.Mutex
	products map[string]entities.Product
}

func (m *memStock) GetProduct(_ context.Context, productID string) (entities.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (m *memStock) ReserveStock(ctx context.Context, productID string, quantity int) error {
	p, err := m.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	runtime.Gosched()
	if p.Stock < quantity {
		return entities.ErrInsufficientStock
	}
	m.mu.Lock()
	p.Stock -= quantity
	m.products[productID] = p
	m.mu.Unlock()
	return nil
}

func (m *memStock) ReleaseStock(context.Context, string, int) error {
	return nil
}

func TestOrderService_ConcurrentCheckoutOfLastUnit(t *testing.T) {
	stock := &memStock{products: map[string]entities.Product{
		"A": {ID: "A", Price: dec("10.00"), Stock: 1},
	}}
	orders := mocks.NewMockOrderRepo(t)
	orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
	events := mocks.NewMockEventPublisher(t)
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	products := mocks.NewMockCache(t)
	products.EXPECT().Delete("A").Return().Once()

	svc := service.NewOrderService(discardLogger(), passThroughTx(t), orders, stock, mocks.NewMockCouponValidator(t),
		mocks.NewMockStoreReader(t), products, events, lock.NewKeyed(), service.DefaultTransitionGuard())

	const buyers = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		short     atomic.Int32
		start     = make(chan struct{})
	)
	for i := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			buyer := entities.Identity{Subject: "buyer-" + string(rune('a'+i)), Roles: []entities.Role{entities.RoleCustomer}, Active: true}
			_, err := svc.CreateOrder(context.Background(), buyer, entities.Order{
				Items: []entities.LineItem{line("A", 1, "10.00")},
				Total: dec("10.00"),
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, entities.ErrInsufficientStock):
				short.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, succeeded.Load())
	assert.EqualValues(t, buyers-1, short.Load())

	p, err := stock.GetProduct(context.Background(), "A")
	require.NoError(t, err)
	assert.Zero(t, p.Stock)
}
