package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	users   *mocks.MockUserRepo
	tokens  *mocks.MockTokenIssuer
	revoker *mocks.MockTokenRevoker
}

func newUserMocks(t *testing.T) userMocks {
	return userMocks{
		users:   mocks.NewMockUserRepo(t),
		tokens:  mocks.NewMockTokenIssuer(t),
		revoker: mocks.NewMockTokenRevoker(t),
	}
}

func TestUserService_Register(t *testing.T) {
	testCases := []struct {
		name         string
		email        string
		password     string
		mockBehavior func(users *mocks.MockUserRepo)
		wantErr      error
	}{
		{
			name:     "OK",
			email:    " Jane@Example.com ",
			password: "correct-horse",
			mockBehavior: func(users *mocks.MockUserRepo) {
				users.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
					return u.Email == "jane@example.com" &&
						u.Active &&
						len(u.Roles) == 1 && u.Roles[0] == entities.RoleCustomer &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")) == nil
				})).Return(nil)
			},
		},
		{
			name:     "taken email",
			email:    "jane@example.com",
			password: "correct-horse",
			mockBehavior: func(users *mocks.MockUserRepo) {
				users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.ErrDuplicateUser)
			},
			wantErr: entities.ErrDuplicateUser,
		},
		{
			name:         "bad email",
			email:        "not-an-email",
			password:     "correct-horse",
			mockBehavior: func(*mocks.MockUserRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "short password",
			email:        "jane@example.com",
			password:     "short",
			mockBehavior: func(*mocks.MockUserRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newUserMocks(t)
			svc := service.NewUserService(discardLogger(), m.users, m.tokens, m.revoker)
			tc.mockBehavior(m.users)

			user, err := svc.Register(context.Background(), tc.email, "Jane", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := entities.User{ID: "user-1", Email: "jane@example.com", PasswordHash: string(hash), Active: true}
	expires := time.Now().Add(time.Hour)
	issueErr := errors.New("boom")

	testCases := []struct {
		name         string
		password     string
		mockBehavior func(m userMocks)
		wantErr      error
	}{
		{
			name:     "OK",
			password: "correct-horse",
			mockBehavior: func(m userMocks) {
				m.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
				m.tokens.EXPECT().Issue(user).Return("token", expires, nil)
			},
		},
		{
			name:     "wrong password",
			password: "wrong-horse",
			mockBehavior: func(m userMocks) {
				m.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "correct-horse",
			mockBehavior: func(m userMocks) {
				m.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "inactive",
			password: "correct-horse",
			mockBehavior: func(m userMocks) {
				inactive := user
				inactive.Active = false
				m.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(inactive, nil)
			},
			wantErr: entities.ErrInactiveAccount,
		},
		{
			name:     "issuer fails",
			password: "correct-horse",
			mockBehavior: func(m userMocks) {
				m.users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
				m.tokens.EXPECT().Issue(user).Return("", time.Time{}, issueErr)
			},
			wantErr: issueErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newUserMocks(t)
			svc := service.NewUserService(discardLogger(), m.users, m.tokens, m.revoker)
			tc.mockBehavior(m)

			session, err := svc.Login(context.Background(), "Jane@example.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", session.Token)
			assert.Equal(t, expires, session.ExpiresAt)
		})
	}
}

func TestUserService_Logout(t *testing.T) {
	m := newUserMocks(t)
	svc := service.NewUserService(discardLogger(), m.users, m.tokens, m.revoker)
	expiry := time.Now().Add(time.Hour)
	id := customer
	id.TokenID = "jti-1"
	id.Expiry = expiry

	m.revoker.EXPECT().Revoke(mock.Anything, "jti-1", expiry).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), id))

	assert.ErrorIs(t, svc.Logout(context.Background(), entities.Identity{}), entities.ErrUnauthenticated)
}

func TestUserService_AdminOperations(t *testing.T) {
	m := newUserMocks(t)
	svc := service.NewUserService(discardLogger(), m.users, m.tokens, m.revoker)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetActive(ctx, customer, "user-2", false), entities.ErrUnauthorizedAccess)

	m.users.EXPECT().SetUserActive(mock.Anything, "user-2", false).Return(nil)
	assert.NoError(t, svc.SetActive(ctx, admin, "user-2", false))

	assert.ErrorIs(t, svc.SetRoles(ctx, admin, "user-2", []entities.Role{"wizard"}), entities.ErrInvalidInput)

	m.users.EXPECT().SetUserRoles(mock.Anything, "user-2", []entities.Role{entities.RoleSeller}).Return(nil)
	assert.NoError(t, svc.SetRoles(ctx, admin, "user-2", []entities.Role{entities.RoleSeller}))

	m.users.EXPECT().GetUserByID(mock.Anything, "user-2").Return(entities.User{ID: "user-2"}, nil)
	_, err := svc.GetUser(ctx, admin, "user-2")
	assert.NoError(t, err)
	_, err = svc.GetUser(ctx, customer, "user-2")
	assert.ErrorIs(t, err, entities.ErrUnauthorizedAccess)
}

func TestUserService_Resolve(t *testing.T) {
	m := newUserMocks(t)
	svc := service.NewUserService(discardLogger(), m.users, m.tokens, m.revoker)
	m.users.EXPECT().GetUserByID(mock.Anything, "user-1").
		Return(entities.User{ID: "user-1", Roles: []entities.Role{entities.RoleSeller}, Active: false}, nil)

	id, err := svc.Resolve(context.Background(), entities.Identity{Subject: "user-1", Roles: []entities.Role{entities.RoleAdmin}, Active: true, TokenID: "jti"})
	require.NoError(t, err)
	assert.Equal(t, []entities.Role{entities.RoleSeller}, id.Roles)
	assert.False(t, id.Active)
	assert.Equal(t, "jti", id.TokenID)
}
