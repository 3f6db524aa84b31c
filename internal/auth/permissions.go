package auth

import (
	"errors"

	"civicmatch_backend/internal/models"
)

// AccessLevel is the capability required by an operation. Levels are
// cumulative: each one implies the ones below it.
type AccessLevel int

const (
	// LevelAuthenticated: a valid, non-expired token resolving to a user.
	LevelAuthenticated AccessLevel = iota
	// LevelActive: authenticated and the account's active flag is set.
	LevelActive
	// LevelElevated: active and the role is one of the reviewer roles.
	LevelElevated
)

var (
	ErrNoPrincipal      = errors.New("no principal")
	ErrAccountInactive  = errors.New("account inactive")
	ErrInsufficientRole = errors.New("insufficient role")
)

// CheckLevel verifies a user against a required access level. The returned
// errors keep "inactive" and "insufficient role" distinguishable; both are
// authorization failures, never authentication ones.
func CheckLevel(user *models.User, level AccessLevel) error {
	if user == nil {
		return ErrNoPrincipal
	}
	if level >= LevelActive && !user.IsActive {
		return ErrAccountInactive
	}
	if level >= LevelElevated && !user.Role.IsElevated() {
		return ErrInsufficientRole
	}
	return nil
}

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return models.UserRole(claims.Role) == models.UserRoleAdmin
}

// ValidateRole rejects unknown role names.
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleAdmin, models.UserRoleUser, models.UserRoleVerifier:
		return nil
	default:
		return errors.New("invalid role")
	}
}
