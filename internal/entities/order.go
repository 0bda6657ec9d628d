package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusRefunded  OrderStatus = "refunded"
)

// LineItem keeps the unit price the customer saw at order time.
type LineItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Order struct {
	ID         string
	UserID     string
	Items      []LineItem
	Status     OrderStatus
	Total      decimal.Decimal
	CouponCode string
	Discount   decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemsTotal is the sum of quantity × unit price over all line items.
func (o Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

// AmountDue is what the customer pays after the coupon discount.
func (o Order) AmountDue() decimal.Decimal {
	return o.Total.Sub(o.Discount)
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id"`
	UserID     string      `json:"user_id"`
	From       OrderStatus `json:"from,omitempty"`
	To         OrderStatus `json:"to"`
	Total      string      `json:"total"`
	OccurredAt time.Time   `json:"occurred_at"`
}
