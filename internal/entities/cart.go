package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	UserID    string
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// Coupon discount is a percentage in [0, 100].
type Coupon struct {
	Code      string
	Discount  decimal.Decimal
	ExpiresAt *time.Time
	Active    bool
}

// ValidAt reports whether the coupon can be applied at the given moment.
func (c Coupon) ValidAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	return c.ExpiresAt == nil || now.Before(*c.ExpiresAt)
}

func (c *Coupon) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Coupon) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(c)
}

// CouponResult is the outcome of coupon validation. An invalid coupon is a
// value, not an error.
type CouponResult struct {
	Code     string
	Valid    bool
	Discount decimal.Decimal
}

type Quote struct {
	Items    []CartItem
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Coupon   CouponResult
}
