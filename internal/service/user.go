package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	// CreateUser returns entities.ErrDuplicateUser when the email is taken.
	CreateUser(ctx context.Context, u entities.User) error
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	SetUserActive(ctx context.Context, userID string, active bool) error
	SetUserRoles(ctx context.Context, userID string, roles []entities.Role) error
}

type TokenIssuer interface {
	Issue(user entities.User) (string, time.Time, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
}

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

const minPasswordLength = 8

type userService struct {
	logger   *slog.Logger
	validate *validator.Validate
	users    UserRepo
	tokens   TokenIssuer
	revoker  TokenRevoker
	cost     int
	now      func() time.Time
}

func NewUserService(logger *slog.Logger, users UserRepo, tokens TokenIssuer, revoker TokenRevoker) *userService {
	return &userService{
		logger:   logger.With(slog.String("service", "user")),
		validate: validator.New(),
		users:    users,
		tokens:   tokens,
		revoker:  revoker,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

func (s *userService) Register(ctx context.Context, email, name, password string) (entities.User, error) {
	email = normalizeEmail(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return entities.User{}, entities.InvalidInput("invalid email")
	}
	if len(password) < minPasswordLength {
		return entities.User{}, entities.InvalidInput(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		Roles:        []entities.Role{entities.RoleCustomer},
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}
	s.logger.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return Session{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, entities.ErrInvalidCredentials
	}
	if !user.Active {
		return Session{}, entities.ErrInactiveAccount
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return Session{Token: token, ExpiresAt: exp, User: user}, nil
}

// Logout revokes the token the caller authenticated with.
func (s *userService) Logout(ctx context.Context, id entities.Identity) error {
	if id.Subject == "" {
		return entities.ErrUnauthenticated
	}
	if id.TokenID == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, id.TokenID, id.Expiry); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *userService) Me(ctx context.Context, id entities.Identity) (entities.User, error) {
	if id.Subject == "" {
		return entities.User{}, entities.ErrUnauthenticated
	}
	return s.users.GetUserByID(ctx, id.Subject)
}

func (s *userService) GetUser(ctx context.Context, id entities.Identity, userID string) (entities.User, error) {
	if err := auth.AuthorizeOwner(id, userID, "view user", entities.RoleAdmin); err != nil {
		return entities.User{}, err
	}
	return s.users.GetUserByID(ctx, userID)
}

func (s *userService) SetActive(ctx context.Context, id entities.Identity, userID string, active bool) error {
	if err := auth.Authorize(id, "change user status", entities.RoleAdmin); err != nil {
		return err
	}
	if err := s.users.SetUserActive(ctx, userID, active); err != nil {
		return err
	}
	s.logger.Info("user status changed", slog.String("user_id", userID), slog.Bool("active", active))
	return nil
}

func (s *userService) SetRoles(ctx context.Context, id entities.Identity, userID string, roles []entities.Role) error {
	if err := auth.Authorize(id, "change user roles", entities.RoleAdmin); err != nil {
		return err
	}
	for _, r := range roles {
		switch r {
		case entities.RoleCustomer, entities.RoleSeller, entities.RoleAdmin:
		default:
			return entities.InvalidInput(fmt.Sprintf("unknown role %q", r))
		}
	}
	return s.users.SetUserRoles(ctx, userID, roles)
}

// Resolve refreshes a token identity from the user store, so that role
// changes and deactivation take effect before the token expires.
func (s *userService) Resolve(ctx context.Context, id entities.Identity) (entities.Identity, error) {
	user, err := s.users.GetUserByID(ctx, id.Subject)
	if err != nil {
		return entities.Identity{}, err
	}
	id.Roles = user.Roles
	id.Active = user.Active
	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
