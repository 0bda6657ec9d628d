package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetCoupon(ctx context.Context, code string) (entities.Coupon, error) {
	query, args := r.qb.Select("code", "discount", "expires_at", "active").
		From("coupons").
		Where(sq.Eq{"code": code}).
		MustSql()

	var c Coupon
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Coupon{}, entities.ErrCouponNotFound
	}
	if err != nil {
		return entities.Coupon{}, fmt.Errorf("failed to get coupon: %w", err)
	}
	return CouponToEntity(c), nil
}

func (r *postgresRepo) SaveCoupon(ctx context.Context, c entities.Coupon) error {
	query, args := r.qb.Insert("coupons").
		Columns("code", "discount", "expires_at", "active").
		Values(c.Code, c.Discount, nullTime(c.ExpiresAt), c.Active).
		Suffix("ON CONFLICT (code) DO UPDATE SET discount = EXCLUDED.discount, " +
			"expires_at = EXCLUDED.expires_at, active = EXCLUDED.active").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save coupon: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListCoupons(ctx context.Context) ([]entities.Coupon, error) {
	query, args := r.qb.Select("code", "discount", "expires_at", "active").
		From("coupons").
		OrderBy("code").
		MustSql()

	var rows []Coupon
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select coupons: %w", err)
	}
	coupons := make([]entities.Coupon, 0, len(rows))
	for _, c := range rows {
		coupons = append(coupons, CouponToEntity(c))
	}
	return coupons, nil
}
