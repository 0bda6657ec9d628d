package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

type CouponRepo interface {
	GetCoupon(ctx context.Context, code string) (entities.Coupon, error)
	SaveCoupon(ctx context.Context, c entities.Coupon) error
	ListCoupons(ctx context.Context) ([]entities.Coupon, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type couponService struct {
	logger        *slog.Logger
	repo          CouponRepo
	cache         Cache
	caseSensitive bool
	now           func() time.Time
}

func NewCouponService(logger *slog.Logger, repo CouponRepo, cache Cache, caseSensitive bool) *couponService {
	return &couponService{
		logger:        logger.With(slog.String("service", "coupon")),
		repo:          repo,
		cache:         cache,
		caseSensitive: caseSensitive,
		now:           time.Now,
	}
}

// ValidateCoupon never fails: unknown, inactive and expired codes, as well
// as lookup errors, all come back as an invalid result with zero discount.
func (s *couponService) ValidateCoupon(ctx context.Context, code string) entities.CouponResult {
	code = s.normalize(code)
	result := entities.CouponResult{Code: code, Discount: decimal.Zero}
	if code == "" {
		return result
	}

	coupon, err := s.lookup(ctx, code)
	if errors.Is(err, entities.ErrCouponNotFound) {
		return result
	}
	if err != nil {
		s.logger.Error("failed to get coupon", slog.String("code", code), slog.Any("error", err))
		return result
	}

	if !coupon.ValidAt(s.now()) {
		return result
	}
	if coupon.Discount.IsNegative() || coupon.Discount.GreaterThan(hundred) {
		s.logger.Warn("coupon discount out of range", slog.String("code", code), slog.String("discount", coupon.Discount.String()))
		return result
	}

	result.Valid = true
	result.Discount = coupon.Discount
	return result
}

func (s *couponService) CreateCoupon(ctx context.Context, id entities.Identity, c entities.Coupon) (entities.Coupon, error) {
	if err := auth.Authorize(id, "create coupon", entities.RoleAdmin); err != nil {
		return entities.Coupon{}, err
	}
	c.Code = s.normalize(c.Code)
	if c.Code == "" {
		return entities.Coupon{}, entities.InvalidInput("coupon code is required")
	}
	if c.Discount.IsNegative() || c.Discount.GreaterThan(hundred) {
		return entities.Coupon{}, entities.ErrInvalidDiscount
	}

	if err := s.repo.SaveCoupon(ctx, c); err != nil {
		return entities.Coupon{}, fmt.Errorf("failed to save coupon: %w", err)
	}
	s.cache.Delete(c.Code)
	s.logger.Info("coupon saved", slog.String("code", c.Code))
	return c, nil
}

func (s *couponService) ListCoupons(ctx context.Context, id entities.Identity) ([]entities.Coupon, error) {
	if err := auth.Authorize(id, "list coupons", entities.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.ListCoupons(ctx)
}

func (s *couponService) normalize(code string) string {
	code = strings.TrimSpace(code)
	if !s.caseSensitive {
		code = strings.ToUpper(code)
	}
	return code
}

func (s *couponService) lookup(ctx context.Context, code string) (entities.Coupon, error) {
	var coupon entities.Coupon
	if data, ok := s.cache.Get(code); ok {
		if err := coupon.Unmarshal(data); err == nil {
			return coupon, nil
		}
		s.cache.Delete(code)
	}

	coupon, err := s.repo.GetCoupon(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}

	if data, err := coupon.Marshal(); err == nil {
		s.cache.Set(code, data)
	}
	return coupon, nil
}
