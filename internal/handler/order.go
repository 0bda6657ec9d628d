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

type OrderService interface {
	CreateOrder(ctx context.Context, id entities.Identity, draft entities.Order) (entities.Order, error)
	GetOrder(ctx context.Context, id entities.Identity, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, id entities.Identity, userID string, limit, offset int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id entities.Identity, orderID string, to entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, id entities.Identity, orderID string) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{order_id}", h.GetOrder)
		r.Patch("/{order_id}/status", h.UpdateStatus)
		r.Delete("/{order_id}", h.DeleteOrder)
	})
}

// CreateOrder creates an order from an explicit draft.
// @Summary      Create order
// @Tags         orders
// @Security     BearerAuth
// @Param        order  body      CreateOrderRequest  true  "Draft order"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ErrorResponse "Validation failed"
// @Failure      401    {object}  utils.ErrorResponse "Not signed in"
// @Failure      404    {object}  utils.ErrorResponse "Product not found"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	order, err := h.svc.CreateOrder(ctx, identity(r), entities.Order{
		Items:      LineItemsJSONToEntity(req.Items),
		Total:      req.Total,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders lists orders of the caller, or of any user for admins.
// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Owner of the orders (admin only)"
// @Param        limit    query     int     false  "Page size"
// @Param        offset   query     int     false  "Page offset"
// @Success      200      {array}   Order
// @Failure      401      {object}  utils.ErrorResponse "Not signed in"
// @Failure      403      {object}  utils.ErrorResponse "Forbidden"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}

	orders, err := h.svc.ListOrders(ctx, identity(r), r.URL.Query().Get("user_id"), limit, offset)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, mapSlice(orders, OrderEntityToJSON), http.StatusOK)
}

// GetOrder returns an order by id.
// @Summary      Get order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse "Not the owner"
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, identity(r), orderID)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus moves an order to another status.
// @Summary      Update order status
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string               true  "Order id"
// @Param        status    body      UpdateStatusRequest  true  "Target status"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ErrorResponse "Transition not allowed"
// @Failure      403       {object}  utils.ErrorResponse "Forbidden"
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Failure      409       {object}  utils.ErrorResponse "Order changed concurrently"
// @Router       /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	order, err := h.svc.UpdateStatus(ctx, identity(r), orderID, entities.OrderStatus(req.Status))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to update order status")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder removes an order.
// @Summary      Delete order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path  string  true  "Order id"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Admins only"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.DeleteOrder(ctx, identity(r), chi.URLParam(r, "order_id")); err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
