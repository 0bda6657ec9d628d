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
)

type StoreRepo interface {
	StoreReader
	CreateStore(ctx context.Context, s entities.Store) error
	ListStores(ctx context.Context, limit, offset int) ([]entities.Store, error)
}

type storeService struct {
	logger *slog.Logger
	repo   StoreRepo
	now    func() time.Time
}

func NewStoreService(logger *slog.Logger, repo StoreRepo) *storeService {
	return &storeService{
		logger: logger.With(slog.String("service", "store")),
		repo:   repo,
		now:    time.Now,
	}
}

func (s *storeService) CreateStore(ctx context.Context, id entities.Identity, store entities.Store) (entities.Store, error) {
	if err := auth.Authorize(id, "create store", entities.RoleSeller, entities.RoleAdmin); err != nil {
		return entities.Store{}, err
	}
	if strings.TrimSpace(store.Name) == "" {
		return entities.Store{}, entities.InvalidInput("store name is required")
	}

	now := s.now().UTC()
	store.ID = uuid.NewString()
	store.OwnerID = id.Subject
	store.CreatedAt = now
	store.UpdatedAt = now
	if err := s.repo.CreateStore(ctx, store); err != nil {
		return entities.Store{}, fmt.Errorf("failed to create store: %w", err)
	}
	s.logger.Info("store created", slog.String("store_id", store.ID), slog.String("owner_id", store.OwnerID))
	return store, nil
}

func (s *storeService) GetStore(ctx context.Context, storeID string) (entities.Store, error) {
	return s.repo.GetStore(ctx, storeID)
}

func (s *storeService) ListStores(ctx context.Context, limit, offset int) ([]entities.Store, error) {
	limit, offset = page(limit, offset)
	return s.repo.ListStores(ctx, limit, offset)
}
