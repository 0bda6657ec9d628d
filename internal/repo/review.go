package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var reviewColumns = []string{"id", "product_id", "user_id", "rating", "comment", "created_at"}

func (r *postgresRepo) CreateReview(ctx context.Context, rv entities.Review) error {
	query, args := r.qb.Insert("reviews").
		Columns(reviewColumns...).
		Values(rv.ID, rv.ProductID, rv.UserID, rv.Rating, nullString(rv.Comment), rv.CreatedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	switch {
	case isPQCode(err, uniqueViolation):
		return entities.ErrDuplicateReview
	case isPQCode(err, foreignKeyViolation):
		return entities.ErrProductNotFound
	case err != nil:
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetReview(ctx context.Context, reviewID string) (entities.Review, error) {
	query, args := r.qb.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"id": reviewID}).
		MustSql()

	var rv Review
	err := r.getContext(ctx, &rv, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Review{}, entities.ErrReviewNotFound
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to get review: %w", err)
	}
	return ReviewToEntity(rv), nil
}

func (r *postgresRepo) ListReviews(ctx context.Context, productID string, limit, offset int) ([]entities.Review, error) {
	query, args := r.qb.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []Review
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}
	reviews := make([]entities.Review, 0, len(rows))
	for _, rv := range rows {
		reviews = append(reviews, ReviewToEntity(rv))
	}
	return reviews, nil
}

func (r *postgresRepo) DeleteReview(ctx context.Context, reviewID string) error {
	query, args := r.qb.Delete("reviews").
		Where(sq.Eq{"id": reviewID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if n, err := affected(res); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	} else if n == 0 {
		return entities.ErrReviewNotFound
	}
	return nil
}
