package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// settledStatuses are the order statuses counted as sales.
var settledStatuses = []string{
	string(entities.StatusPaid),
	string(entities.StatusShipped),
	string(entities.StatusDelivered),
}

func (r *postgresRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]entities.SalesByDay, error) {
	query, args := r.qb.Select(
		"date_trunc('day', created_at) AS day",
		"count(*) AS orders",
		"coalesce(sum(total - discount), 0) AS amount",
	).
		From("orders").
		Where(sq.Eq{"status": settledStatuses}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		GroupBy("day").
		OrderBy("day").
		MustSql()

	var rows []SalesByDay
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select daily sales: %w", err)
	}
	res := make([]entities.SalesByDay, 0, len(rows))
	for _, row := range rows {
		res = append(res, entities.SalesByDay{Day: row.Day, Orders: row.Orders, Amount: row.Amount})
	}
	return res, nil
}

func (r *postgresRepo) SalesByCategory(ctx context.Context, from, to time.Time) ([]entities.SalesByCategory, error) {
	query, args := r.qb.Select(
		"p.category_id AS category_id",
		"sum(oi.quantity) AS units",
		"sum(oi.quantity * oi.unit_price) AS amount",
	).
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		LeftJoin("products p ON p.id = oi.product_id").
		Where(sq.Eq{"o.status": settledStatuses}).
		Where(sq.GtOrEq{"o.created_at": from}).
		Where(sq.Lt{"o.created_at": to}).
		GroupBy("p.category_id").
		OrderBy("amount DESC").
		MustSql()

	var rows []SalesByCategory
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select category sales: %w", err)
	}
	res := make([]entities.SalesByCategory, 0, len(rows))
	for _, row := range rows {
		res = append(res, entities.SalesByCategory{CategoryID: row.CategoryID.String, Units: row.Units, Amount: row.Amount})
	}
	return res, nil
}
