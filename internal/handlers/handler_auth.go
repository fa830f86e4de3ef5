package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/middleware"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserAuthSvc
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserAuthSvc, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// throttled per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, loginLimiter *limiter.Limiter, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Returns a JWT bearer token carrying the user's role.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, err, "Error al iniciar sesión")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, logger, err, "Error al generar el token")
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
