package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	Register(ctx context.Context, email, name, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	Logout(ctx context.Context, id entities.Identity) error
	Me(ctx context.Context, id entities.Identity) (entities.User, error)
	GetUser(ctx context.Context, id entities.Identity, userID string) (entities.User, error)
	SetActive(ctx context.Context, id entities.Identity, userID string, active bool) error
	SetRoles(ctx context.Context, id entities.Identity, userID string, roles []entities.Role) error
}

type UserHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	svc        UserService
	loginLimit func(http.Handler) http.Handler
}

// NewUserHandler wraps the login route with loginLimit.
func NewUserHandler(logger *slog.Logger, svc UserService, loginLimit func(http.Handler) http.Handler) *UserHandler {
	return &UserHandler{
		logger:     logger.With(slog.String("handler", "user")),
		validate:   validator.New(),
		svc:        svc,
		loginLimit: loginLimit,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.With(h.loginLimit).Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/me", h.Me)
		r.Get("/{user_id}", h.GetUser)
		r.Put("/{user_id}/active", h.SetActive)
		r.Put("/{user_id}/roles", h.SetRoles)
	})
}

// Register
// @Summary      Register customer account
// @Tags         auth
// @Param        user  body      RegisterRequest  true  "Account"
// @Success      201   {object}  User
// @Failure      400   {object}  utils.ErrorResponse "Validation failed"
// @Failure      409   {object}  utils.ErrorResponse "Email already registered"
// @Router       /auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	user, err := h.svc.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to register user")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// Login
// @Summary      Sign in
// @Tags         auth
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  LoginResponse
// @Failure      401          {object}  utils.ErrorResponse "Invalid credentials"
// @Failure      403          {object}  utils.ErrorResponse "Account disabled"
// @Failure      429          {object}  utils.ErrorResponse "Too many attempts"
// @Router       /auth/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	session, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to login")
		return
	}
	utils.WriteJSON(w, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      UserEntityToJSON(session.User),
	}, http.StatusOK)
}

// Logout revokes the presented token.
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Not signed in"
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.Logout(ctx, identity(r)); err != nil {
		writeError(ctx, h.logger, w, err, "failed to logout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me
// @Summary      Current user
// @Tags         users
// @Security     BearerAuth
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse "Not signed in"
// @Router       /users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.svc.Me(ctx, identity(r))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get current user")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// GetUser
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User id"
// @Success      200      {object}  User
// @Failure      403      {object}  utils.ErrorResponse "Admins only"
// @Failure      404      {object}  utils.ErrorResponse "User not found"
// @Router       /users/{user_id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.svc.GetUser(ctx, identity(r), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to get user")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// SetActive enables or disables an account.
// @Summary      Activate or deactivate user
// @Tags         users
// @Security     BearerAuth
// @Param        user_id  path  string            true  "User id"
// @Param        active   body  SetActiveRequest  true  "Desired state"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Admins only"
// @Router       /users/{user_id}/active [put]
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SetActiveRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	if err := h.svc.SetActive(ctx, identity(r), chi.URLParam(r, "user_id"), req.Active); err != nil {
		writeError(ctx, h.logger, w, err, "failed to change user status")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetRoles
// @Summary      Replace user roles
// @Tags         users
// @Security     BearerAuth
// @Param        user_id  path  string           true  "User id"
// @Param        roles    body  SetRolesRequest  true  "Roles"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Admins only"
// @Router       /users/{user_id}/roles [put]
func (h *UserHandler) SetRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SetRolesRequest
	if !decode(w, r, h.validate, &req) {
		return
	}
	roles := make([]entities.Role, 0, len(req.Roles))
	for _, role := range req.Roles {
		roles = append(roles, entities.Role(role))
	}
	if err := h.svc.SetRoles(ctx, identity(r), chi.URLParam(r, "user_id"), roles); err != nil {
		writeError(ctx, h.logger, w, err, "failed to change user roles")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
