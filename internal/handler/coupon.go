package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CouponService interface {
	ValidateCoupon(ctx context.Context, code string) entities.CouponResult
	CreateCoupon(ctx context.Context, id entities.Identity, c entities.Coupon) (entities.Coupon, error)
	ListCoupons(ctx context.Context, id entities.Identity) ([]entities.Coupon, error)
}

type CouponHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CouponService
}

func NewCouponHandler(logger *slog.Logger, svc CouponService) *CouponHandler {
	return &CouponHandler{
		logger:   logger.With(slog.String("handler", "coupon")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CouponHandler) Init(r chi.Router) {
	r.Route("/coupons", func(r chi.Router) {
		r.Get("/", h.ListCoupons)
		r.Post("/", h.CreateCoupon)
		r.Get("/{code}", h.ValidateCoupon)
	})
}

// ValidateCoupon checks a coupon code. Unknown codes are reported as invalid.
// @Summary      Validate coupon
// @Tags         coupons
// @Param        code  path      string  true  "Coupon code"
// @Success      200   {object}  CouponResult
// @Router       /coupons/{code} [get]
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	res := h.svc.ValidateCoupon(r.Context(), chi.URLParam(r, "code"))
	utils.WriteJSON(w, CouponResultEntityToJSON(res), http.StatusOK)
}

// CreateCoupon
// @Summary      Create or replace coupon
// @Tags         coupons
// @Security     BearerAuth
// @Param        coupon  body      Coupon  true  "Coupon"
// @Success      201     {object}  Coupon
// @Failure      400     {object}  utils.ErrorResponse "Discount out of range"
// @Failure      403     {object}  utils.ErrorResponse "Admins only"
// @Router       /coupons [post]
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req Coupon
	if !decode(w, r, h.validate, &req) {
		return
	}
	c, err := h.svc.CreateCoupon(ctx, identity(r), CouponJSONToEntity(req))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create coupon")
		return
	}
	utils.WriteJSON(w, CouponEntityToJSON(c), http.StatusCreated)
}

// ListCoupons
// @Summary      List coupons
// @Tags         coupons
// @Security     BearerAuth
// @Success      200  {array}   Coupon
// @Failure      403  {object}  utils.ErrorResponse "Admins only"
// @Router       /coupons [get]
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupons, err := h.svc.ListCoupons(ctx, identity(r))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list coupons")
		return
	}
	utils.WriteJSON(w, mapSlice(coupons, CouponEntityToJSON), http.StatusOK)
}
