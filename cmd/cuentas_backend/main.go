package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/handlers"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/middleware"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/platform/config"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/repositories/database/pgsql"
	"github.com/lautarocloudy/api-cuenta-corrientes/pkg/database"
)

// @title API Cuentas Corrientes
// @version 1.0
// @description Clientes, proveedores, facturas, recibos y saldos de cuenta corriente.

// @host localhost:4000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.Up, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		logger.Error("Failed to configure login rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, loginLimiter, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{"X-Request-ID"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
