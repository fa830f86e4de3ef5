package repositories

import (
	"context"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
