package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ListCartItems(ctx context.Context, userID string) ([]entities.CartItem, error) {
	query, args := r.qb.Select("user_id", "product_id", "quantity", "added_at").
		From("cart_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("added_at", "product_id").
		MustSql()

	var rows []CartItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	items := make([]entities.CartItem, 0, len(rows))
	for _, c := range rows {
		items = append(items, CartItemToEntity(c))
	}
	return items, nil
}

func (r *postgresRepo) AddCartItem(ctx context.Context, item entities.CartItem) error {
	query, args := r.qb.Insert("cart_items").
		Columns("user_id", "product_id", "quantity", "added_at").
		Values(item.UserID, item.ProductID, item.Quantity, item.AddedAt).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isPQCode(err, foreignKeyViolation) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *postgresRepo) SetCartItemQuantity(ctx context.Context, userID, productID string, quantity int) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if n, err := affected(res); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	} else if n == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteCartItem(ctx context.Context, userID, productID string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if n, err := affected(res); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	} else if n == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *postgresRepo) ClearCart(ctx context.Context, userID string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
