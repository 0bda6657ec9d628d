package auth

import (
	"context"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type identityKey struct{}

// WithIdentity binds id to ctx unless an identity is already present.
func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	if _, ok := IdentityFrom(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entities.Identity)
	return id, ok
}
