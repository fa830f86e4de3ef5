package services

import (
	"context"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
