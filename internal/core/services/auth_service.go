package services

import (
	"context"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/platform/config"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token carrying the user's role.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
