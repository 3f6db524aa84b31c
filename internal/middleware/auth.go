package middleware

import (
	"errors"
	"strings"

	"civicmatch_backend/internal/auth"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/pkg/apperrors"
	"civicmatch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	userIDKey   = "userID"
	userRoleKey = "role"
)

// AuthMiddleware validates the bearer token and stores the claims in
// the gin context. Expired and malformed tokens fail with distinct
// messages so clients can tell whether to refresh or re-authenticate.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authorization header missing or invalid"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.NewUnauthorizedError("token expired"))
			} else {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, models.UserRole(claims.Role))
		c.Next()
	}
}

// OptionalAuthMiddleware parses the bearer token when one is present
// but lets anonymous requests through. Used on public routes that
// behave slightly differently for signed-in users.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(userIDKey, claims.UserID)
				c.Set(userRoleKey, models.UserRole(claims.Role))
			}
		}
		c.Next()
	}
}

// RequireLevel loads the user and enforces the given access level.
// The database lookup means a deactivated or demoted account is shut
// out immediately, not when its token expires.
func RequireLevel(level auth.AccessLevel) gin.HandlerFunc {
	userRepo := repositories.NewUserRepository()

	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("not authenticated"))
			c.Abort()
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("db handle missing from context")))
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(db, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.NewUnauthorizedError("account no longer exists"))
			} else {
				apperrors.HandleError(c, apperrors.InternalError(err))
			}
			c.Abort()
			return
		}

		if err := auth.CheckLevel(user, level); err != nil {
			switch {
			case errors.Is(err, auth.ErrAccountInactive):
				apperrors.HandleError(c, apperrors.ErrUserInactive)
			case errors.Is(err, auth.ErrInsufficientRole):
				apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			default:
				apperrors.HandleError(c, apperrors.NewUnauthorizedError("not authenticated"))
			}
			c.Abort()
			return
		}

		c.Set(userRoleKey, user.Role)
		c.Next()
	}
}

// RequireRoles gates a route on the role carried by the token claims.
// Cheaper than RequireLevel since it skips the user lookup, so changes
// to a role take effect only once the old token expires.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role := GetUserRole(c)
		if role == "" || !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from the context.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole extracts the authenticated user's role from the context.
func GetUserRole(c *gin.Context) models.UserRole {
	val, exists := c.Get(userRoleKey)
	if !exists {
		return ""
	}
	role, ok := val.(models.UserRole)
	if !ok {
		if s, isStr := val.(string); isStr {
			return models.UserRole(s)
		}
		return ""
	}
	return role
}
