package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext retrieves the authenticated user's role.
func GetRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.UserRole)
	return role, ok
}

func withIdentity(ctx context.Context, userID string, role domain.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
