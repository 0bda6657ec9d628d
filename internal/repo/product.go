package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var productColumns = []string{
	"id", "name", "description", "price", "stock",
	"category_id", "store_id", "created_at", "updated_at",
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, p.Name, nullString(p.Description), p.Price, p.Stock,
			nullString(p.CategoryID), p.StoreID, p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isPQCode(err, foreignKeyViolation) {
		return entities.ErrStoreNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, q entities.ProductQuery) ([]entities.Product, error) {
	b := r.qb.Select(productColumns...).
		From("products").
		OrderBy("created_at DESC", "id").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset))

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if q.CategoryID != "" {
		b = b.Where(sq.Eq{"category_id": q.CategoryID})
	}
	if q.StoreID != "" {
		b = b.Where(sq.Eq{"store_id": q.StoreID})
	}

	query, args := b.MustSql()
	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, nil
}

func (r *postgresRepo) LatestProducts(ctx context.Context, count int) ([]entities.Product, error) {
	return r.ListProducts(ctx, entities.ProductQuery{Limit: count})
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		SetMap(map[string]any{
			"name":        p.Name,
			"description": nullString(p.Description),
			"price":       p.Price,
			"stock":       p.Stock,
			"category_id": nullString(p.CategoryID),
			"updated_at":  p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, err := affected(res); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	} else if n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, productID string) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, err := affected(res); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	} else if n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

// ReserveStock takes quantity units in a single conditional update, so two
// concurrent reservations can never drive stock below zero.
func (r *postgresRepo) ReserveStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	n, err := affected(res)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if n == 1 {
		return nil
	}

	if _, err := r.GetProduct(ctx, productID); err != nil {
		return err
	}
	return entities.ErrInsufficientStock
}

// ReleaseStock returns units of a cancelled order. Deleted products are
// skipped.
func (r *postgresRepo) ReleaseStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	return nil
}
