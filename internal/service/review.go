package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/google/uuid"
)

type ReviewRepo interface {
	// CreateReview returns entities.ErrDuplicateReview when the user has
	// already reviewed the product.
	CreateReview(ctx context.Context, r entities.Review) error
	GetReview(ctx context.Context, reviewID string) (entities.Review, error)
	ListReviews(ctx context.Context, productID string, limit, offset int) ([]entities.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	logger   *slog.Logger
	repo     ReviewRepo
	products ProductReader
	now      func() time.Time
}

func NewReviewService(logger *slog.Logger, repo ReviewRepo, products ProductReader) *reviewService {
	return &reviewService{
		logger:   logger.With(slog.String("service", "review")),
		repo:     repo,
		products: products,
		now:      time.Now,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, id entities.Identity, r entities.Review) (entities.Review, error) {
	if err := auth.Authorize(id, "create review"); err != nil {
		return entities.Review{}, err
	}
	if r.Rating < 1 || r.Rating > 5 {
		return entities.Review{}, entities.InvalidInput("rating must be between 1 and 5")
	}
	if _, err := s.products.GetProduct(ctx, r.ProductID); err != nil {
		return entities.Review{}, err
	}

	r.ID = uuid.NewString()
	r.UserID = id.Subject
	r.CreatedAt = s.now().UTC()
	if err := s.repo.CreateReview(ctx, r); err != nil {
		return entities.Review{}, err
	}
	return r, nil
}

func (s *reviewService) ListReviews(ctx context.Context, productID string, limit, offset int) ([]entities.Review, error) {
	limit, offset = page(limit, offset)
	return s.repo.ListReviews(ctx, productID, limit, offset)
}

func (s *reviewService) DeleteReview(ctx context.Context, id entities.Identity, reviewID string) error {
	if err := auth.Authorize(id, "delete review"); err != nil {
		return err
	}
	r, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := auth.AuthorizeOwner(id, r.UserID, "delete review", entities.RoleAdmin); err != nil {
		return err
	}
	return s.repo.DeleteReview(ctx, reviewID)
}
