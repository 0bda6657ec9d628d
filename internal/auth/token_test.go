package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type revocations map[string]bool

func (r revocations) IsRevoked(_ context.Context, id string) (bool, error) {
	if id == "broken" {
		return false, errors.New("redis down")
	}
	return r[id], nil
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager(testSecret, "shop", time.Hour, nil)
	user := entities.User{ID: "u1", Roles: []entities.Role{entities.RoleAdmin}}

	token, exp, err := m.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.Subject)
	assert.True(t, id.IsAdmin())
	assert.True(t, id.Active)
	assert.NotEmpty(t, id.TokenID)
}

func TestTokenManager_Extract(t *testing.T) {
	m := NewTokenManager(testSecret, "shop", time.Hour, revocations{})
	valid, _, err := m.Issue(entities.User{ID: "u1", Roles: []entities.Role{entities.RoleCustomer}})
	require.NoError(t, err)

	other := NewTokenManager("ffffffffffffffffffffffffffffffff", "shop", time.Hour, nil)
	foreign, _, err := other.Issue(entities.User{ID: "u1"})
	require.NoError(t, err)

	expired := NewTokenManager(testSecret, "shop", time.Hour, nil)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(entities.User{ID: "u1"})
	require.NoError(t, err)

	otherIssuer := NewTokenManager(testSecret, "elsewhere", time.Hour, nil)
	wrongIss, _, err := otherIssuer.Issue(entities.User{ID: "u1"})
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "u1", Issuer: "shop", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		wantOK bool
	}{
		{name: "valid bearer", header: "Bearer " + valid, wantOK: true},
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: valid},
		{name: "garbage", header: "Bearer not.a.token"},
		{name: "foreign signature", header: "Bearer " + foreign},
		{name: "expired", header: "Bearer " + old},
		{name: "wrong issuer", header: "Bearer " + wrongIss},
		{name: "alg none", header: "Bearer " + unsigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := m.Extract(context.Background(), tc.header)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, "u1", id.Subject)
			} else {
				assert.Empty(t, id.Subject)
			}
		})
	}
}

func TestTokenManager_Revoked(t *testing.T) {
	revoked := revocations{}
	m := NewTokenManager(testSecret, "shop", time.Hour, revoked)
	token, _, err := m.Issue(entities.User{ID: "u1"})
	require.NoError(t, err)

	id, err := m.Verify(context.Background(), token)
	require.NoError(t, err)

	revoked[id.TokenID] = true
	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrRevoked)

	_, ok := m.Extract(context.Background(), "Bearer "+token)
	assert.False(t, ok)
}

func TestWithIdentity_InstallsOnce(t *testing.T) {
	ctx := context.Background()
	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, entities.Identity{Subject: "first"})
	ctx = WithIdentity(ctx, entities.Identity{Subject: "second"})

	id, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "first", id.Subject)
}
