package service

import (
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyDiscount returns the discount amount for pct percent of subtotal,
// rounded half-up to cents.
func ApplyDiscount(subtotal, pct decimal.Decimal) (decimal.Decimal, error) {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero, entities.ErrInvalidDiscount
	}
	return subtotal.Mul(pct).Div(hundred).Round(2), nil
}
