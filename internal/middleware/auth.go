package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// A missing header is a 401; a token that is present but unusable is a 403.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "El encabezado Authorization debe ser Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Token inválido"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token inválido"})
			return
		}

		role := domain.UserRole(claims.Role)
		enrichedLogger := logger.With(slog.String("user_id", userID), slog.String("role", string(role)))

		ctx := withIdentity(c.Request.Context(), userID, role)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Role not allowed", slog.String("role", string(role)))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
	}
}
