package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

var ErrRevoked = errors.New("token revoked")

// Claims carried by access tokens.
type Claims struct {
	Roles []entities.Role `json:"roles"`
	jwt.RegisteredClaims
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	revoked RevocationChecker
	now     func() time.Time
}

func NewTokenManager(secret, issuer string, ttl time.Duration, revoked RevocationChecker) *TokenManager {
	return &TokenManager{
		secret:  []byte(secret),
		issuer:  issuer,
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}
}

func (m *TokenManager) Issue(user entities.User) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Claims{
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, issuer, expiry and revocation of a raw token.
func (m *TokenManager) Verify(ctx context.Context, raw string) (entities.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return entities.Identity{}, err
	}
	if claims.Subject == "" {
		return entities.Identity{}, errors.New("token has no subject")
	}

	if m.revoked != nil && claims.ID != "" {
		revoked, err := m.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return entities.Identity{}, fmt.Errorf("failed to check revocation: %w", err)
		}
		if revoked {
			return entities.Identity{}, ErrRevoked
		}
	}

	id := entities.Identity{
		Subject: claims.Subject,
		Roles:   claims.Roles,
		Active:  true,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		id.Expiry = claims.ExpiresAt.Time
	}
	return id, nil
}

// Extract reads an Authorization header value. Any problem with the
// credential means "no credential": the caller continues anonymously.
func (m *TokenManager) Extract(ctx context.Context, header string) (entities.Identity, bool) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return entities.Identity{}, false
	}
	id, err := m.Verify(ctx, raw)
	if err != nil {
		return entities.Identity{}, false
	}
	return id, true
}
