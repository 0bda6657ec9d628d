package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type ProductReader interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}

type StockChecker struct {
	products ProductReader
}

func NewStockChecker(products ProductReader) *StockChecker {
	return &StockChecker{products: products}
}

// ValidateStockAvailability fails when the product is missing or holds less
// than requested units. It never changes stock.
func (c *StockChecker) ValidateStockAvailability(ctx context.Context, productID string, requested int) error {
	p, err := c.products.GetProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		return entities.ProductNotFound(productID)
	}
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if requested > p.Stock {
		return entities.InsufficientStock(productID, requested, p.Stock)
	}
	return nil
}
