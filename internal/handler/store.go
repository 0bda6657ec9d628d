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

type StoreService interface {
	CreateStore(ctx context.Context, id entities.Identity, s entities.Store) (entities.Store, error)
	GetStore(ctx context.Context, storeID string) (entities.Store, error)
	ListStores(ctx context.Context, limit, offset int) ([]entities.Store, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, id entities.Identity, r entities.Review) (entities.Review, error)
	ListReviews(ctx context.Context, productID string, limit, offset int) ([]entities.Review, error)
	DeleteReview(ctx context.Context, id entities.Identity, reviewID string) error
}

type StoreHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	stores   StoreService
	reviews  ReviewService
}

func NewStoreHandler(logger *slog.Logger, stores StoreService, reviews ReviewService) *StoreHandler {
	return &StoreHandler{
		logger:   logger.With(slog.String("handler", "store")),
		validate: validator.New(),
		stores:   stores,
		reviews:  reviews,
	}
}

func (h *StoreHandler) Init(r chi.Router) {
	r.Route("/stores", func(r chi.Router) {
		r.Get("/", h.ListStores)
		r.Post("/", h.CreateStore)
		r.Get("/{store_id}", h.GetStore)
	})
	r.Get("/products/{product_id}/reviews", h.ListReviews)
	r.Post("/products/{product_id}/reviews", h.CreateReview)
	r.Delete("/reviews/{review_id}", h.DeleteReview)
}

// CreateStore opens a store owned by the caller.
// @Summary      Create store
// @Tags         stores
// @Security     BearerAuth
// @Param        store  body      CreateStoreRequest  true  "Store"
// @Success      201    {object}  Store
// @Failure      403    {object}  utils.ErrorResponse "Sellers and admins only"
// @Router       /stores [post]
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateStoreRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	s, err := h.stores.CreateStore(ctx, identity(r), entities.Store{Name: req.Name, Description: req.Description})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create store")
		return
	}
	utils.WriteJSON(w, StoreEntityToJSON(s), http.StatusCreated)
}

// ListStores
// @Summary      List stores
// @Tags         stores
// @Param        limit   query    int  false  "Page size"
// @Param        offset  query    int  false  "Page offset"
// @Success      200     {array}  Store
// @Router       /stores [get]
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}
	stores, err := h.stores.ListStores(ctx, limit, offset)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list stores")
		return
	}
	utils.WriteJSON(w, mapSlice(stores, StoreEntityToJSON), http.StatusOK)
}

// GetStore
// @Summary      Get store
// @Tags         stores
// @Param        store_id  path      string  true  "Store id"
// @Success      200       {object}  Store
// @Failure      404       {object}  utils.ErrorResponse "Store not found"
// @Router       /stores/{store_id} [get]
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, err := h.stores.GetStore(ctx, chi.URLParam(r, "store_id"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get store")
		return
	}
	utils.WriteJSON(w, StoreEntityToJSON(s), http.StatusOK)
}

// ListReviews
// @Summary      Product reviews
// @Tags         reviews
// @Param        product_id  path     string  true   "Product id"
// @Param        limit       query    int     false  "Page size"
// @Param        offset      query    int     false  "Page offset"
// @Success      200         {array}  Review
// @Router       /products/{product_id}/reviews [get]
func (h *StoreHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}
	reviews, err := h.reviews.ListReviews(ctx, chi.URLParam(r, "product_id"), limit, offset)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list reviews")
		return
	}
	utils.WriteJSON(w, mapSlice(reviews, ReviewEntityToJSON), http.StatusOK)
}

// CreateReview
// @Summary      Review a product
// @Tags         reviews
// @Security     BearerAuth
// @Param        product_id  path      string               true  "Product id"
// @Param        review      body      CreateReviewRequest  true  "Review"
// @Success      201         {object}  Review
// @Failure      409         {object}  utils.ErrorResponse "Already reviewed"
// @Router       /products/{product_id}/reviews [post]
func (h *StoreHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateReviewRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	review, err := h.reviews.CreateReview(ctx, identity(r), entities.Review{
		ProductID: chi.URLParam(r, "product_id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create review")
		return
	}
	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}

// DeleteReview
// @Summary      Delete review
// @Tags         reviews
// @Security     BearerAuth
// @Param        review_id  path  string  true  "Review id"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Author or admin only"
// @Router       /reviews/{review_id} [delete]
func (h *StoreHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.reviews.DeleteReview(ctx, identity(r), chi.URLParam(r, "review_id")); err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete review")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
