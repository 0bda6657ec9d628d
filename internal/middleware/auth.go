package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type TokenExtractor interface {
	Extract(ctx context.Context, header string) (entities.Identity, bool)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, id entities.Identity) (entities.Identity, error)
}

// Authenticate installs the caller identity when the request carries a
// valid bearer token. Requests without one continue anonymously; handlers
// decide whether that is enough.
func Authenticate(logger *slog.Logger, tokens TokenExtractor, users IdentityResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			id, ok := tokens.Extract(ctx, header)
			if !ok {
				if header != "" {
					authResults.WithLabelValues("rejected").Inc()
				} else {
					authResults.WithLabelValues("anonymous").Inc()
				}
				next.ServeHTTP(w, r)
				return
			}

			resolved, err := users.Resolve(ctx, id)
			if err != nil {
				if !errors.Is(err, entities.ErrUserNotFound) {
					logger.WarnContext(ctx, "failed to resolve identity", slog.String("subject", id.Subject), slog.Any("error", err))
				}
				authResults.WithLabelValues("rejected").Inc()
				next.ServeHTTP(w, r)
				return
			}

			authResults.WithLabelValues("authenticated").Inc()
			r = r.WithContext(auth.WithIdentity(ctx, resolved))
			noteSubject(w, r)
			next.ServeHTTP(w, r)
		})
	}
}
