package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var storeColumns = []string{"id", "owner_id", "name", "description", "created_at", "updated_at"}

func (r *postgresRepo) CreateStore(ctx context.Context, s entities.Store) error {
	query, args := r.qb.Insert("stores").
		Columns(storeColumns...).
		Values(s.ID, s.OwnerID, s.Name, nullString(s.Description), s.CreatedAt, s.UpdatedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isPQCode(err, foreignKeyViolation) {
		return entities.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetStore(ctx context.Context, storeID string) (entities.Store, error) {
	query, args := r.qb.Select(storeColumns...).
		From("stores").
		Where(sq.Eq{"id": storeID}).
		MustSql()

	var s Store
	err := r.getContext(ctx, &s, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	if err != nil {
		return entities.Store{}, fmt.Errorf("failed to get store: %w", err)
	}
	return StoreToEntity(s), nil
}

func (r *postgresRepo) ListStores(ctx context.Context, limit, offset int) ([]entities.Store, error) {
	query, args := r.qb.Select(storeColumns...).
		From("stores").
		OrderBy("name", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []Store
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select stores: %w", err)
	}
	stores := make([]entities.Store, 0, len(rows))
	for _, s := range rows {
		stores = append(stores, StoreToEntity(s))
	}
	return stores, nil
}
