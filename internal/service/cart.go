package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

type CartRepo interface {
	ListCartItems(ctx context.Context, userID string) ([]entities.CartItem, error)
	// AddCartItem inserts the item or adds its quantity to an existing one.
	AddCartItem(ctx context.Context, item entities.CartItem) error
	SetCartItemQuantity(ctx context.Context, userID, productID string, quantity int) error
	DeleteCartItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

type CouponValidator interface {
	ValidateCoupon(ctx context.Context, code string) entities.CouponResult
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, id entities.Identity, draft entities.Order) (entities.Order, error)
}

type cartService struct {
	logger   *slog.Logger
	carts    CartRepo
	products ProductReader
	coupons  CouponValidator
	orders   OrderCreator
	now      func() time.Time
}

func NewCartService(logger *slog.Logger, carts CartRepo, products ProductReader, coupons CouponValidator, orders OrderCreator) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		carts:    carts,
		products: products,
		coupons:  coupons,
		orders:   orders,
		now:      time.Now,
	}
}

func (s *cartService) AddItem(ctx context.Context, id entities.Identity, productID string, quantity int) error {
	if err := auth.Authorize(id, "edit cart"); err != nil {
		return err
	}
	if quantity <= 0 {
		return entities.InvalidInput("quantity must be positive")
	}
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.carts.AddCartItem(ctx, entities.CartItem{
		UserID:    id.Subject,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   s.now().UTC(),
	})
}

// SetQuantity replaces the quantity of a cart line; zero removes it.
func (s *cartService) SetQuantity(ctx context.Context, id entities.Identity, productID string, quantity int) error {
	if err := auth.Authorize(id, "edit cart"); err != nil {
		return err
	}
	if quantity < 0 {
		return entities.InvalidInput("quantity must not be negative")
	}
	if quantity == 0 {
		return s.carts.DeleteCartItem(ctx, id.Subject, productID)
	}
	return s.carts.SetCartItemQuantity(ctx, id.Subject, productID, quantity)
}

func (s *cartService) RemoveItem(ctx context.Context, id entities.Identity, productID string) error {
	if err := auth.Authorize(id, "edit cart"); err != nil {
		return err
	}
	return s.carts.DeleteCartItem(ctx, id.Subject, productID)
}

func (s *cartService) Items(ctx context.Context, id entities.Identity) ([]entities.CartItem, error) {
	if err := auth.Authorize(id, "view cart"); err != nil {
		return nil, err
	}
	return s.carts.ListCartItems(ctx, id.Subject)
}

// Subtotal prices the cart of userID at current product prices.
func (s *cartService) Subtotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	items, err := s.carts.ListCartItems(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	_, subtotal, err := s.price(ctx, items)
	return subtotal, err
}

// Quote prices the cart and applies code when it is a valid coupon. An
// invalid code is reported in the quote, not as an error.
func (s *cartService) Quote(ctx context.Context, id entities.Identity, code string) (entities.Quote, error) {
	if err := auth.Authorize(id, "view cart"); err != nil {
		return entities.Quote{}, err
	}
	items, err := s.carts.ListCartItems(ctx, id.Subject)
	if err != nil {
		return entities.Quote{}, err
	}
	_, subtotal, err := s.price(ctx, items)
	if err != nil {
		return entities.Quote{}, err
	}

	quote := entities.Quote{
		Items:    items,
		Subtotal: subtotal,
		Discount: decimal.Zero,
		Total:    subtotal,
		Coupon:   entities.CouponResult{Discount: decimal.Zero},
	}
	if code == "" {
		return quote, nil
	}

	quote.Coupon = s.coupons.ValidateCoupon(ctx, code)
	if !quote.Coupon.Valid {
		return quote, nil
	}
	discount, err := ApplyDiscount(subtotal, quote.Coupon.Discount)
	if err != nil {
		return entities.Quote{}, err
	}
	quote.Discount = discount
	quote.Total = subtotal.Sub(discount)
	return quote, nil
}

// Checkout turns the cart into an order priced at current product prices
// and empties the cart. A coupon code, when given, must be valid.
func (s *cartService) Checkout(ctx context.Context, id entities.Identity, code string) (entities.Order, error) {
	if err := auth.Authorize(id, "checkout"); err != nil {
		return entities.Order{}, err
	}
	items, err := s.carts.ListCartItems(ctx, id.Subject)
	if err != nil {
		return entities.Order{}, err
	}
	if len(items) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}

	lines, subtotal, err := s.price(ctx, items)
	if err != nil {
		return entities.Order{}, err
	}
	draft := entities.Order{
		Items:    lines,
		Total:    subtotal,
		Discount: decimal.Zero,
	}

	if code != "" {
		coupon := s.coupons.ValidateCoupon(ctx, code)
		if !coupon.Valid {
			return entities.Order{}, entities.ErrInvalidCoupon
		}
		discount, err := ApplyDiscount(subtotal, coupon.Discount)
		if err != nil {
			return entities.Order{}, err
		}
		draft.CouponCode = coupon.Code
		draft.Discount = discount
	}

	order, err := s.orders.CreateOrder(ctx, id, draft)
	if err != nil {
		return entities.Order{}, err
	}

	if err := s.carts.ClearCart(ctx, id.Subject); err != nil {
		s.logger.Error("failed to clear cart", slog.String("user_id", id.Subject), slog.Any("error", err))
	}
	return order, nil
}

func (s *cartService) price(ctx context.Context, items []entities.CartItem) ([]entities.LineItem, decimal.Decimal, error) {
	lines := make([]entities.LineItem, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		p, err := s.products.GetProduct(ctx, it.ProductID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to price cart item %s: %w", it.ProductID, err)
		}
		line := entities.LineItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: p.Price}
		lines = append(lines, line)
		subtotal = subtotal.Add(line.Amount())
	}
	return lines, subtotal, nil
}
