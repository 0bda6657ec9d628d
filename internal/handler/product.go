package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	CreateProduct(ctx context.Context, id entities.Identity, p entities.Product) (entities.Product, error)
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context, q entities.ProductQuery) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, id entities.Identity, productID string, patch service.ProductPatch) (entities.Product, error)
	DeleteProduct(ctx context.Context, id entities.Identity, productID string) error
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "product")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{product_id}", h.GetProduct)
		r.Patch("/{product_id}", h.UpdateProduct)
		r.Delete("/{product_id}", h.DeleteProduct)
	})
}

// ListProducts searches the catalog.
// @Summary      List products
// @Tags         products
// @Param        q            query     string  false  "Search in name and description"
// @Param        category_id  query     string  false  "Category filter"
// @Param        store_id     query     string  false  "Store filter"
// @Param        limit        query     int     false  "Page size"
// @Param        offset       query     int     false  "Page offset"
// @Success      200          {array}   Product
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	products, err := h.svc.ListProducts(ctx, entities.ProductQuery{
		Search:     q.Get("q"),
		CategoryID: q.Get("category_id"),
		StoreID:    q.Get("store_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to list products")
		return
	}
	utils.WriteJSON(w, mapSlice(products, ProductEntityToJSON), http.StatusOK)
}

// CreateProduct adds a product to a store of the caller.
// @Summary      Create product
// @Tags         products
// @Security     BearerAuth
// @Param        product  body      CreateProductRequest  true  "Product"
// @Success      201      {object}  Product
// @Failure      403      {object}  utils.ErrorResponse "Sellers and admins only"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateProductRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	p, err := h.svc.CreateProduct(ctx, identity(r), CreateProductJSONToEntity(req))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to create product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusCreated)
}

// GetProduct returns a product by id.
// @Summary      Get product
// @Tags         products
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  Product
// @Failure      404         {object}  utils.ErrorResponse "Product not found"
// @Router       /products/{product_id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")
	if err := h.validate.Var(productID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	p, err := h.svc.GetProduct(ctx, productID)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusOK)
}

// UpdateProduct changes the given product fields.
// @Summary      Update product
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path      string                true  "Product id"
// @Param        product     body      UpdateProductRequest  true  "Fields to change"
// @Success      200         {object}  Product
// @Router       /products/{product_id} [patch]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateProductRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	p, err := h.svc.UpdateProduct(ctx, identity(r), chi.URLParam(r, "product_id"), UpdateProductJSONToPatch(req))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to update product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusOK)
}

// DeleteProduct removes a product.
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path  string  true  "Product id"
// @Success      204
// @Router       /products/{product_id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.DeleteProduct(ctx, identity(r), chi.URLParam(r, "product_id")); err != nil {
		writeError(ctx, h.logger, w, err, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
