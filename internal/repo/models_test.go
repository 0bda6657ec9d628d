package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderToEntity(t *testing.T) {
	o := Order{
		ID:         "order-1",
		UserID:     "user-1",
		Status:     "paid",
		Total:      decimal.RequireFromString("35.00"),
		CouponCode: sql.NullString{String: "SAVE10", Valid: true},
		Discount:   decimal.RequireFromString("3.50"),
	}
	items := []OrderItem{
		{OrderID: "order-1", ProductID: "A", Quantity: 3, UnitPrice: decimal.RequireFromString("10.00")},
		{OrderID: "order-1", ProductID: "B", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
	}

	got := OrderToEntity(o, items)

	assert.Equal(t, entities.StatusPaid, got.Status)
	assert.Equal(t, "SAVE10", got.CouponCode)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, "A", got.Items[0].ProductID)
	assert.True(t, got.AmountDue().Equal(decimal.RequireFromString("31.50")))
}

func TestCouponToEntity(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	never := CouponToEntity(Coupon{Code: "FOREVER", Discount: decimal.NewFromInt(5), Active: true})
	assert.Nil(t, never.ExpiresAt)

	dated := CouponToEntity(Coupon{Code: "NY", ExpiresAt: sql.NullTime{Time: expires, Valid: true}})
	if assert.NotNil(t, dated.ExpiresAt) {
		assert.Equal(t, expires, *dated.ExpiresAt)
	}
}

func TestRoles(t *testing.T) {
	roles := []entities.Role{entities.RoleCustomer, entities.RoleSeller}

	arr := rolesToArray(roles)
	assert.Equal(t, pq.StringArray{"customer", "seller"}, arr)

	u := UserToEntity(User{ID: "user-1", Roles: arr, Active: true})
	assert.Equal(t, roles, u.Roles)
}

func TestNullHelpers(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, nullString("x"))
	assert.False(t, nullTime(nil).Valid)
}
