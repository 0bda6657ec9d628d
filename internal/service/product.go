package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepo interface {
	ProductReader
	CreateProduct(ctx context.Context, p entities.Product) error
	ListProducts(ctx context.Context, q entities.ProductQuery) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	LatestProducts(ctx context.Context, count int) ([]entities.Product, error)
}

type StoreReader interface {
	GetStore(ctx context.Context, storeID string) (entities.Store, error)
}

// ProductPatch carries the fields of a partial product update.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
	stores StoreReader
	cache  Cache
	now    func() time.Time
}

func NewProductService(logger *slog.Logger, repo ProductRepo, stores StoreReader, cache Cache) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
		stores: stores,
		cache:  cache,
		now:    time.Now,
	}
}

func (s *productService) CreateProduct(ctx context.Context, id entities.Identity, p entities.Product) (entities.Product, error) {
	if err := auth.Authorize(id, "create product", entities.RoleSeller, entities.RoleAdmin); err != nil {
		return entities.Product{}, err
	}
	if err := s.authorizeStore(ctx, id, p.StoreID, "create product"); err != nil {
		return entities.Product{}, err
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	now := s.now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.Info("product created", slog.String("product_id", p.ID), slog.String("store_id", p.StoreID))
	return p, nil
}

// GetProduct serves catalog reads through the cache.
func (s *productService) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	if data, ok := s.cache.Get(productID); ok {
		var p entities.Product
		if err := p.Unmarshal(data); err == nil {
			return p, nil
		}
		s.logger.Error("failed to unmarshal cached product", slog.String("product_id", productID))
		s.cache.Delete(productID)
	}

	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	s.store(p)
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, q entities.ProductQuery) ([]entities.Product, error) {
	q.Search = strings.TrimSpace(q.Search)
	q.Limit, q.Offset = page(q.Limit, q.Offset)
	return s.repo.ListProducts(ctx, q)
}

func (s *productService) UpdateProduct(ctx context.Context, id entities.Identity, productID string, patch ProductPatch) (entities.Product, error) {
	if err := auth.Authorize(id, "update product", entities.RoleSeller, entities.RoleAdmin); err != nil {
		return entities.Product{}, err
	}
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if err := s.authorizeStore(ctx, id, p.StoreID, "update product"); err != nil {
		return entities.Product{}, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	p.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return entities.Product{}, err
	}
	s.cache.Delete(productID)
	return p, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id entities.Identity, productID string) error {
	if err := auth.Authorize(id, "delete product", entities.RoleSeller, entities.RoleAdmin); err != nil {
		return err
	}
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.authorizeStore(ctx, id, p.StoreID, "delete product"); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.cache.Delete(productID)
	s.logger.Info("product deleted", slog.String("product_id", productID))
	return nil
}

// WarmUpCache loads the most recently added products into the cache.
func (s *productService) WarmUpCache(ctx context.Context, count int) error {
	products, err := s.repo.LatestProducts(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to get latest products: %w", err)
	}
	for _, p := range products {
		s.store(p)
	}
	s.logger.Info("cache warmed up", slog.Int("count", len(products)))
	return nil
}

func (s *productService) store(p entities.Product) {
	data, err := p.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal product", slog.String("product_id", p.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(p.ID, data)
}

// authorizeStore lets admins through and sellers only into their own store.
func (s *productService) authorizeStore(ctx context.Context, id entities.Identity, storeID, action string) error {
	store, err := s.stores.GetStore(ctx, storeID)
	if err != nil {
		return err
	}
	return auth.AuthorizeOwner(id, store.OwnerID, action, entities.RoleAdmin)
}

func validateProduct(p entities.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return entities.InvalidInput("product name is required")
	case !p.Price.IsPositive():
		return entities.InvalidInput("product price must be positive")
	case p.Stock < 0:
		return entities.InvalidInput("product stock must not be negative")
	}
	return nil
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	return limit, max(offset, 0)
}
