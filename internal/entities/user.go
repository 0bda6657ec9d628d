package entities

import (
	"slices"
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Roles        []Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated caller, derived from a verified token.
type Identity struct {
	Subject string
	Roles   []Role
	Active  bool
	TokenID string
	Expiry  time.Time
}

func (i Identity) HasRole(r Role) bool {
	return slices.Contains(i.Roles, r)
}

func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
