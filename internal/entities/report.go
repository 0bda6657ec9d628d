package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesByDay struct {
	Day    time.Time
	Orders int
	Amount decimal.Decimal
}

type SalesByCategory struct {
	CategoryID string
	Units      int
	Amount     decimal.Decimal
}
