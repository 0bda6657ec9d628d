package auth

import (
	"slices"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

// Authorize allows an action when the identity is present, active and holds
// at least one of roles. With no roles listed any signed-in user passes.
func Authorize(id entities.Identity, action string, roles ...entities.Role) error {
	if id.Subject == "" {
		return entities.ErrUnauthenticated
	}
	if !id.Active {
		return entities.ErrInactiveAccount
	}
	if len(roles) == 0 {
		return nil
	}
	if slices.ContainsFunc(roles, id.HasRole) {
		return nil
	}
	return entities.UnauthorizedAccess(action)
}

// AuthorizeOwner passes for the owner of a resource or for any of roles.
func AuthorizeOwner(id entities.Identity, ownerID, action string, roles ...entities.Role) error {
	if err := Authorize(id, action); err != nil {
		return err
	}
	if id.Subject == ownerID {
		return nil
	}
	if len(roles) == 0 {
		return entities.UnauthorizedAccess(action)
	}
	return Authorize(id, action, roles...)
}
