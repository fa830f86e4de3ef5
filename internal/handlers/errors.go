package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error to its status code. Server-side failures
// are logged with their cause and answered with the generic fallback message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: clientMessage(err, apperrors.ErrValidation, "Datos inválidos")})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: clientMessage(err, apperrors.ErrNotFound, "No encontrado")})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: clientMessage(err, apperrors.ErrDuplicate, "Ya existe un registro con esos datos")})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciales inválidas"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Acceso denegado"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// clientMessage returns the human part of an error wrapping sentinel, or
// def when there is none. Repository AppErrors carry driver context and are
// replaced by def.
func clientMessage(err error, sentinel error, def string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return def
	}
	prefix := sentinel.Error() + ": "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return def
}

// bindError answers a request whose body or query failed to bind.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Formato de solicitud inválido: " + err.Error()})
}
