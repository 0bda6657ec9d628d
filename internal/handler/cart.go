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

type CartService interface {
	AddItem(ctx context.Context, id entities.Identity, productID string, quantity int) error
	SetQuantity(ctx context.Context, id entities.Identity, productID string, quantity int) error
	RemoveItem(ctx context.Context, id entities.Identity, productID string) error
	Items(ctx context.Context, id entities.Identity) ([]entities.CartItem, error)
	Quote(ctx context.Context, id entities.Identity, code string) (entities.Quote, error)
	Checkout(ctx context.Context, id entities.Identity, code string) (entities.Order, error)
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.Items)
		r.Post("/items", h.AddItem)
		r.Put("/items/{product_id}", h.SetQuantity)
		r.Delete("/items/{product_id}", h.RemoveItem)
		r.Get("/quote", h.Quote)
		r.Post("/checkout", h.Checkout)
	})
}

// Items lists the caller's cart.
// @Summary      Cart items
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {array}   CartItem
// @Failure      401  {object}  utils.ErrorResponse "Not signed in"
// @Router       /cart [get]
func (h *CartHandler) Items(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.svc.Items(ctx, identity(r))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list cart items")
		return
	}
	utils.WriteJSON(w, mapSlice(items, CartItemEntityToJSON), http.StatusOK)
}

// AddItem puts a product into the cart or raises its quantity.
// @Summary      Add cart item
// @Tags         cart
// @Security     BearerAuth
// @Param        item  body  AddCartItemRequest  true  "Product and quantity"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Validation failed"
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req AddCartItemRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	if err := h.svc.AddItem(ctx, identity(r), req.ProductID, req.Quantity); err != nil {
		writeError(ctx, h.logger, w, err, "failed to add cart item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetQuantity replaces the quantity of a cart item, zero removes it.
// @Summary      Set cart item quantity
// @Tags         cart
// @Security     BearerAuth
// @Param        product_id  path  string              true  "Product id"
// @Param        quantity    body  SetQuantityRequest  true  "New quantity"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Item not in cart"
// @Router       /cart/items/{product_id} [put]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SetQuantityRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	if err := h.svc.SetQuantity(ctx, identity(r), chi.URLParam(r, "product_id"), req.Quantity); err != nil {
		writeError(ctx, h.logger, w, err, "failed to set cart item quantity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem drops a product from the cart.
// @Summary      Remove cart item
// @Tags         cart
// @Security     BearerAuth
// @Param        product_id  path  string  true  "Product id"
// @Success      204
// @Router       /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.RemoveItem(ctx, identity(r), chi.URLParam(r, "product_id")); err != nil {
		writeError(ctx, h.logger, w, err, "failed to remove cart item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Quote prices the cart, optionally with a coupon.
// @Summary      Price cart
// @Tags         cart
// @Security     BearerAuth
// @Param        coupon  query     string  false  "Coupon code"
// @Success      200     {object}  Quote
// @Router       /cart/quote [get]
func (h *CartHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	quote, err := h.svc.Quote(ctx, identity(r), r.URL.Query().Get("coupon"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to quote cart")
		return
	}
	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusOK)
}

// Checkout turns the cart into an order.
// @Summary      Checkout
// @Tags         cart
// @Security     BearerAuth
// @Param        checkout  body      CheckoutRequest  false  "Coupon code"
// @Success      201       {object}  Order
// @Failure      400       {object}  utils.ErrorResponse "Empty cart, invalid coupon or insufficient stock"
// @Router       /cart/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CheckoutRequest
	if r.ContentLength != 0 && !decode(w, r, h.validate, &req) {
		return
	}
	order, err := h.svc.Checkout(ctx, identity(r), req.Coupon)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to checkout")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}
