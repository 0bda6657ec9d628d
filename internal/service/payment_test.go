package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	partnerCode = "MOMOBKUN20180529"
	accessKey   = "klm05TvNBzhg7h7j"
	secretKey   = "at67qH6mk8w5Y1nAyMoYKMWACiEi2bsa"
)

func signedNotification(v service.PaymentVerifier, resultCode int) entities.PaymentNotification {
	n := entities.PaymentNotification{
		PartnerCode:  partnerCode,
		OrderID:      "order-1",
		RequestID:    "req-1",
		Amount:       90000,
		OrderInfo:    "shop order",
		OrderType:    "momo_wallet",
		TransID:      2147483647,
		ResultCode:   resultCode,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000000000,
	}
	n.Signature = v.Sign(n)
	return n
}

func TestPaymentVerifier_Verify(t *testing.T) {
	v := service.NewPaymentVerifier(partnerCode, accessKey, secretKey)

	testCases := []struct {
		name    string
		mutate  func(n *entities.PaymentNotification)
		wantErr bool
	}{
		{name: "valid", mutate: func(*entities.PaymentNotification) {}},
		{name: "amount tampered", mutate: func(n *entities.PaymentNotification) { n.Amount++ }, wantErr: true},
		{name: "order tampered", mutate: func(n *entities.PaymentNotification) { n.OrderID = "order-2" }, wantErr: true},
		{name: "foreign partner", mutate: func(n *entities.PaymentNotification) { n.PartnerCode = "OTHER" }, wantErr: true},
		{name: "not hex", mutate: func(n *entities.PaymentNotification) { n.Signature = "zz" }, wantErr: true},
		{name: "empty signature", mutate: func(n *entities.PaymentNotification) { n.Signature = "" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := signedNotification(v, 0)
			tc.mutate(&n)

			err := v.Verify(n)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidSignature)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaymentVerifier_KeyMatters(t *testing.T) {
	n := signedNotification(service.NewPaymentVerifier(partnerCode, accessKey, secretKey), 0)

	other := service.NewPaymentVerifier(partnerCode, accessKey, "another-secret")
	assert.ErrorIs(t, other.Verify(n), entities.ErrInvalidSignature)
	assert.Len(t, n.Signature, 64)
}

func TestPaymentService_HandleNotification(t *testing.T) {
	v := service.NewPaymentVerifier(partnerCode, accessKey, secretKey)

	testCases := []struct {
		name         string
		notification entities.PaymentNotification
		mockBehavior func(orders *mocks.MockPaymentMarker)
		wantErr      error
	}{
		{
			name:         "paid",
			notification: signedNotification(v, 0),
			mockBehavior: func(orders *mocks.MockPaymentMarker) {
				orders.EXPECT().MarkPaid(mock.Anything, "order-1", mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.NewFromInt(90000))
				})).Return(nil)
			},
		},
		{
			name:         "declined is acknowledged",
			notification: signedNotification(v, 1006),
			mockBehavior: func(*mocks.MockPaymentMarker) {},
		},
		{
			name: "bad signature",
			notification: func() entities.PaymentNotification {
				n := signedNotification(v, 0)
				n.Amount = 1
				return n
			}(),
			mockBehavior: func(*mocks.MockPaymentMarker) {},
			wantErr:      entities.ErrInvalidSignature,
		},
		{
			name:         "amount mismatch",
			notification: signedNotification(v, 0),
			mockBehavior: func(orders *mocks.MockPaymentMarker) {
				orders.EXPECT().MarkPaid(mock.Anything, "order-1", mock.Anything).Return(entities.ErrPaymentMismatch)
			},
			wantErr: entities.ErrPaymentMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockPaymentMarker(t)
			tc.mockBehavior(orders)

			err := service.NewPaymentService(discardLogger(), v, orders).HandleNotification(context.Background(), tc.notification)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
