package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: nombre, email y contraseña son obligatorios", apperrors.ErrValidation)
	}
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol %q no es válido", apperrors.ErrValidation, req.Role)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user", slog.String("email", email))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un usuario con email %s", apperrors.ErrDuplicate, email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol %q no es válido", apperrors.ErrValidation, req.Role)
	}
	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", apperrors.ErrValidation)
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.Role = role
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SetPassword(ctx context.Context, userID string, newPassword string, requestingUserID string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: debés enviar la nueva contraseña", apperrors.ErrValidation)
	}
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, requestingUserID, time.Now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "Password replaced", slog.String("user_id", userID), slog.String("by", requestingUserID))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	return nil
}

// AuthenticateUser checks credentials. Unknown email and wrong password both
// yield ErrUnauthorized.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to load user for authentication")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
