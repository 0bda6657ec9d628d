package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	created := entities.Order{
		ID:     orderID,
		UserID: customer.Subject,
		Status: entities.StatusCreated,
		Items: []entities.LineItem{
			{ProductID: productID, Quantity: 3, UnitPrice: decimal.RequireFromString("10.00")},
		},
		Total:     decimal.RequireFromString("30.00"),
		CreatedAt: time.Now(),
	}
	body := `{"items":[{"product_id":"` + productID + `","quantity":3,"unit_price":"10.00"}],"total":"30.00"}`

	testCases := []struct {
		name         string
		identity     *entities.Identity
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:     "created",
			identity: &customer,
			body:     body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, customer, mock.MatchedBy(func(o entities.Order) bool {
					return len(o.Items) == 1 && o.Total.Equal(decimal.RequireFromString("30.00"))
				})).Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"amount_due":"30.00"`,
		},
		{
			name:     "coupon code is passed through",
			identity: &customer,
			body:     `{"items":[{"product_id":"` + productID + `","quantity":3,"unit_price":"10.00"}],"total":"30.00","coupon_code":"SPRING10"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, customer, mock.MatchedBy(func(o entities.Order) bool {
					return o.CouponCode == "SPRING10" && o.Discount.IsZero()
				})).Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"created"`,
		},
		{
			name:         "client discount is refused",
			identity:     &customer,
			body:         `{"items":[{"product_id":"` + productID + `","quantity":3,"unit_price":"10.00"}],"total":"30.00","discount":"30.00"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"message":"invalid request body","error":"INVALID_INPUT"`,
		},
		{
			name:     "total mismatch",
			identity: &customer,
			body:     body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.TotalMismatch(decimal.RequireFromString("35"), decimal.RequireFromString("36"))).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"TOTAL_MISMATCH","fields":{"expected":"35.00","provided":"36.00"}`,
		},
		{
			name:     "insufficient stock",
			identity: &customer,
			body:     body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.InsufficientStock(productID, 3, 2)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"fields":{"available":2,"product":"` + productID + `","requested":3}`,
		},
		{
			name:     "unknown product",
			identity: &customer,
			body:     body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ProductNotFound(productID)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"PRODUCT_NOT_FOUND"`,
		},
		{
			name: "anonymous",
			body: body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, entities.Identity{}, mock.Anything).
					Return(entities.Order{}, entities.ErrUnauthenticated).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"error":"UNAUTHENTICATED"`,
		},
		{
			name:     "internal error is hidden",
			identity: &customer,
			body:     body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"internal server error"`,
		},
		{
			name:         "no items",
			identity:     &customer,
			body:         `{"items":[],"total":"0"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Items":"min"`,
		},
		{
			name:         "bad product id",
			identity:     &customer,
			body:         `{"items":[{"product_id":"nope","quantity":1,"unit_price":"1"}],"total":"1"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ProductID":"uuid"`,
		},
		{
			name:         "malformed json",
			identity:     &customer,
			body:         `{"items":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"INVALID_INPUT"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(handler.NewOrderHandler(discardLogger(), svc), tc.identity, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, customer, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusPaid}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name:    "not found",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, customer, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "not owner",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, customer, orderID).
					Return(entities.Order{}, entities.UnauthorizedAccess("view order")).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"error":"UNAUTHORIZED_ACCESS"`,
		},
		{
			name:         "invalid id",
			orderID:      "123",
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"INVALID_INPUT"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(handler.NewOrderHandler(discardLogger(), svc), &customer, http.MethodGet, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "shipped",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, admin, orderID, entities.StatusShipped).
					Return(entities.Order{ID: orderID, Status: entities.StatusShipped}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"shipped"`,
		},
		{
			name: "terminal",
			body: `{"status":"paid"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, admin, orderID, entities.StatusPaid).
					Return(entities.Order{}, entities.OrderAlreadyProcessed(orderID)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"ORDER_ALREADY_PROCESSED"`,
		},
		{
			name: "concurrent update",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, admin, orderID, entities.StatusShipped).
					Return(entities.Order{}, entities.ErrStatusConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"error":"STATUS_CONFLICT"`,
		},
		{
			name:         "missing status",
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(handler.NewOrderHandler(discardLogger(), svc), &admin, http.MethodPatch, "/orders/"+orderID+"/status", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_ListAndDelete(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	h := handler.NewOrderHandler(discardLogger(), svc)

	svc.EXPECT().ListOrders(mock.Anything, admin, "user-1", 10, 20).
		Return([]entities.Order{{ID: orderID}}, nil).Once()
	rr := serve(h, &admin, http.MethodGet, "/orders?user_id=user-1&limit=10&offset=20", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), orderID)

	rr = serve(h, &admin, http.MethodGet, "/orders?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().DeleteOrder(mock.Anything, admin, orderID).Return(nil).Once()
	rr = serve(h, &admin, http.MethodDelete, "/orders/"+orderID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
