package service

import (
	"context"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

// TotalTolerance is the largest accepted gap between a declared order total
// and the sum of its line items.
var TotalTolerance = decimal.RequireFromString("0.01")

type OrderValidator struct {
	stock *StockChecker
}

func NewOrderValidator(stock *StockChecker) *OrderValidator {
	return &OrderValidator{stock: stock}
}

// ValidateOrderCreation checks a draft order before anything is persisted:
// items present and well formed, stock available for each product, declared
// total consistent with the items. The first failure is returned.
func (v *OrderValidator) ValidateOrderCreation(ctx context.Context, draft entities.Order) error {
	if len(draft.Items) == 0 {
		return entities.ErrEmptyOrder
	}
	if err := validateLineItems(draft.Items); err != nil {
		return err
	}

	for _, line := range mergeLines(draft.Items) {
		if err := v.stock.ValidateStockAvailability(ctx, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	return ValidateOrderTotal(draft.Items, draft.Total)
}

// ValidateOrderTotal compares declared against Σ quantity × unit price.
func ValidateOrderTotal(items []entities.LineItem, declared decimal.Decimal) error {
	expected := entities.Order{Items: items}.ItemsTotal()
	if expected.Sub(declared).Abs().GreaterThan(TotalTolerance) {
		return entities.TotalMismatch(expected, declared)
	}
	return nil
}

func validateLineItems(items []entities.LineItem) error {
	for i, it := range items {
		switch {
		case it.ProductID == "":
			return entities.InvalidLineItem(i, "product id is required")
		case it.Quantity <= 0:
			return entities.InvalidLineItem(i, "quantity must be positive")
		case !it.UnitPrice.IsPositive():
			return entities.InvalidLineItem(i, "unit price must be positive")
		}
	}
	return nil
}

// mergeLines sums quantities of lines that share a product, keeping the
// order in which products first appear.
func mergeLines(items []entities.LineItem) []entities.LineItem {
	merged := make([]entities.LineItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

func productIDs(items []entities.LineItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return ids
}
