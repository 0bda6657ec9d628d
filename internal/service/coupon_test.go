package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	admin    = entities.Identity{Subject: "admin-1", Roles: []entities.Role{entities.RoleAdmin}, Active: true}
	seller   = entities.Identity{Subject: "seller-1", Roles: []entities.Role{entities.RoleSeller}, Active: true}
	customer = entities.Identity{Subject: "user-1", Roles: []entities.Role{entities.RoleCustomer}, Active: true}
	stranger = entities.Identity{Subject: "user-2", Roles: []entities.Role{entities.RoleCustomer}, Active: true}
)

func TestCouponService_ValidateCoupon(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCouponRepo)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	testCases := []struct {
		name          string
		code          string
		caseSensitive bool
		mockBehavior  MockBehavior
		wantValid     bool
		wantDiscount  string
	}{
		{
			name: "valid coupon",
			code: "SAVE10",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "SAVE10").
					Return(entities.Coupon{Code: "SAVE10", Discount: dec("10"), Active: true}, nil)
			},
			wantValid:    true,
			wantDiscount: "10",
		},
		{
			name: "trimmed and upper cased",
			code: "  save10 ",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "SAVE10").
					Return(entities.Coupon{Code: "SAVE10", Discount: dec("10"), Active: true, ExpiresAt: &future}, nil)
			},
			wantValid:    true,
			wantDiscount: "10",
		},
		{
			name:          "case sensitive lookup keeps case",
			code:          "save10",
			caseSensitive: true,
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "save10").Return(entities.Coupon{}, entities.ErrCouponNotFound)
			},
		},
		{
			name: "unknown",
			code: "NOPE",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "NOPE").Return(entities.Coupon{}, entities.ErrCouponNotFound)
			},
		},
		{
			name: "expired",
			code: "OLD",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "OLD").
					Return(entities.Coupon{Code: "OLD", Discount: dec("10"), Active: true, ExpiresAt: &past}, nil)
			},
		},
		{
			name: "inactive",
			code: "OFF",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "OFF").
					Return(entities.Coupon{Code: "OFF", Discount: dec("10")}, nil)
			},
		},
		{
			name: "discount out of range",
			code: "BROKEN",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "BROKEN").
					Return(entities.Coupon{Code: "BROKEN", Discount: dec("150"), Active: true}, nil)
			},
		},
		{
			name: "store failure",
			code: "SAVE10",
			mockBehavior: func(repo *mocks.MockCouponRepo) {
				repo.EXPECT().GetCoupon(mock.Anything, "SAVE10").Return(entities.Coupon{}, errors.New("db error"))
			},
		},
		{
			name:         "blank",
			code:         "   ",
			mockBehavior: func(*mocks.MockCouponRepo) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCouponRepo(t)
			c := mocks.NewMockCache(t)
			c.EXPECT().Get(mock.Anything).Return(nil, false).Maybe()
			c.EXPECT().Set(mock.Anything, mock.Anything).Maybe()
			tc.mockBehavior(repo)

			svc := service.NewCouponService(discardLogger(), repo, c, tc.caseSensitive)
			res := svc.ValidateCoupon(context.Background(), tc.code)

			assert.Equal(t, tc.wantValid, res.Valid)
			if tc.wantValid {
				assert.True(t, dec(tc.wantDiscount).Equal(res.Discount))
				return
			}
			assert.True(t, res.Discount.IsZero())
		})
	}
}

func TestCouponService_ValidateCoupon_Save10OnHundred(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	repo.EXPECT().GetCoupon(mock.Anything, "SAVE10").
		Return(entities.Coupon{Code: "SAVE10", Discount: dec("10"), Active: true}, nil)

	svc := service.NewCouponService(discardLogger(), repo, cache.NewLRUCache("test_coupons", 10, time.Minute), false)
	res := svc.ValidateCoupon(context.Background(), "SAVE10")
	require.True(t, res.Valid)

	discount, err := service.ApplyDiscount(dec("100.00"), res.Discount)
	require.NoError(t, err)
	assert.Equal(t, "10.00", discount.StringFixed(2))
	assert.Equal(t, "90.00", dec("100.00").Sub(discount).StringFixed(2))
}

func TestCouponService_ValidateCoupon_Cached(t *testing.T) {
	repo := mocks.NewMockCouponRepo(t)
	repo.EXPECT().GetCoupon(mock.Anything, "SAVE10").
		Return(entities.Coupon{Code: "SAVE10", Discount: dec("10"), Active: true}, nil).Once()

	svc := service.NewCouponService(discardLogger(), repo, cache.NewLRUCache("test_coupons", 10, time.Minute), false)

	for range 3 {
		res := svc.ValidateCoupon(context.Background(), "save10")
		assert.True(t, res.Valid)
	}
}

func TestCouponService_ValidateCoupon_ExpiryCheckedOnCachedCoupon(t *testing.T) {
	soon := time.Now().Add(50 * time.Millisecond)
	repo := mocks.NewMockCouponRepo(t)
	repo.EXPECT().GetCoupon(mock.Anything, "FLASH").
		Return(entities.Coupon{Code: "FLASH", Discount: dec("20"), Active: true, ExpiresAt: &soon}, nil).Once()

	svc := service.NewCouponService(discardLogger(), repo, cache.NewLRUCache("test_coupons", 10, time.Minute), false)

	assert.True(t, svc.ValidateCoupon(context.Background(), "FLASH").Valid)
	time.Sleep(60 * time.Millisecond)
	assert.False(t, svc.ValidateCoupon(context.Background(), "FLASH").Valid)
}

func TestCouponService_CreateCoupon(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCouponRepo, c *mocks.MockCache)

	testCases := []struct {
		name         string
		identity     entities.Identity
		coupon       entities.Coupon
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "OK",
			identity: admin,
			coupon:   entities.Coupon{Code: " spring ", Discount: dec("15"), Active: true},
			mockBehavior: func(repo *mocks.MockCouponRepo, c *mocks.MockCache) {
				repo.EXPECT().SaveCoupon(mock.Anything, mock.MatchedBy(func(c entities.Coupon) bool {
					return c.Code == "SPRING"
				})).Return(nil)
				c.EXPECT().Delete("SPRING").Return()
			},
		},
		{
			name:         "not admin",
			identity:     customer,
			coupon:       entities.Coupon{Code: "X", Discount: dec("15")},
			mockBehavior: func(*mocks.MockCouponRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrUnauthorizedAccess,
		},
		{
			name:         "discount out of range",
			identity:     admin,
			coupon:       entities.Coupon{Code: "X", Discount: dec("101")},
			mockBehavior: func(*mocks.MockCouponRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidDiscount,
		},
		{
			name:         "empty code",
			identity:     admin,
			coupon:       entities.Coupon{Code: "  ", Discount: dec("5")},
			mockBehavior: func(*mocks.MockCouponRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCouponRepo(t)
			c := mocks.NewMockCache(t)
			tc.mockBehavior(repo, c)

			svc := service.NewCouponService(discardLogger(), repo, c, false)
			got, err := svc.CreateCoupon(context.Background(), tc.identity, tc.coupon)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SPRING", got.Code)
		})
	}
}
