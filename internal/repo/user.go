package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{
	"id", "email", "name", "password_hash", "roles", "active", "created_at", "updated_at",
}

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Name, u.PasswordHash, rolesToArray(u.Roles), u.Active, u.CreatedAt, u.UpdatedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isPQCode(err, uniqueViolation) {
		return entities.ErrDuplicateUser
	}
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": userID})
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *postgresRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var u User
	err := r.getContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(u), nil
}

func (r *postgresRepo) SetUserActive(ctx context.Context, userID string, active bool) error {
	return r.updateUser(ctx, userID, "active", active)
}

func (r *postgresRepo) SetUserRoles(ctx context.Context, userID string, roles []entities.Role) error {
	return r.updateUser(ctx, userID, "roles", rolesToArray(roles))
}

func (r *postgresRepo) updateUser(ctx context.Context, userID, column string, value any) error {
	query, args := r.qb.Update("users").
		Set(column, value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, err := affected(res); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	} else if n == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}
