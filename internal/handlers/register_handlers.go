package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/lautarocloudy/api-cuenta-corrientes/cmd/docs"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/middleware"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	loginLimiter *limiter.Limiter,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")
	registerAuthRoutes(api, loginLimiter, services)

	setupProtectedRoutes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes registers everything behind the bearer token.
func setupProtectedRoutes(api *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(protected, services.User)
	registerPartyRoutes(protected, "/clientes", domain.PartyClient, services.Party)
	registerPartyRoutes(protected, "/proveedores", domain.PartySupplier, services.Party)
	registerInvoiceRoutes(protected, services.Invoice, services.Search)
	registerReceiptRoutes(protected, services.Receipt, services.Search)
	registerBalanceRoutes(protected, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
