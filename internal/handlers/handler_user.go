package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/middleware"
)

type userHandler struct {
	userService portssvc.UserSvcFacade
}

// registerUserRoutes registers the /usuarios routes. Reads are open to any
// authenticated user; mutations need the admin role.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	users := rg.Group("/usuarios")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.POST("", adminOnly, h.createUser)
		users.PUT("/:id", adminOnly, h.updateUser)
		users.PUT("/:id/set-password", adminOnly, h.setPassword)
		users.DELETE("/:id", adminOnly, h.deleteUser)
	}
}

// createUser godoc
// @Summary Create a user
// @Tags usuarios
// @Accept  json
// @Produce  json
// @Param   usuario body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /usuarios [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, _ := middleware.GetUserIDFromContext(c)

	user, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Error al crear el usuario")
		return
	}
	logger.Info("User created", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags usuarios
// @Produce  json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /usuarios [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Error al obtener los usuarios")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// getUser godoc
// @Summary Get a user
// @Tags usuarios
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Error al obtener el usuario")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user's name, email and role
// @Tags usuarios
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   usuario body dto.UpdateUserRequest true "User"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	requestingUserID, _ := middleware.GetUserIDFromContext(c)

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondError(c, logger, err, "Error al actualizar el usuario")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// setPassword godoc
// @Summary Set a user's password
// @Description The previous password is not required.
// @Tags usuarios
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   body body dto.SetPasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id}/set-password [put]
func (h *userHandler) setPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	userID := c.Param("id")

	if err := h.userService.SetPassword(c.Request.Context(), userID, req.NewPassword, requestingUserID); err != nil {
		respondError(c, logger, err, "Error al actualizar la contraseña")
		return
	}
	logger.Info("Password updated", slog.String("target_user_id", userID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contraseña actualizada"})
}

// deleteUser godoc
// @Summary Delete a user
// @Tags usuarios
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")
	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, logger, err, "Error al eliminar el usuario")
		return
	}
	logger.Info("User deleted", slog.String("target_user_id", userID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado"})
}
