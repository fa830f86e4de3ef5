package dto

import (
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// CreateUserRequest is the body for creating a user.
type CreateUserRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"contraseña" binding:"required,min=6"`
	Role     string `json:"rol" binding:"omitempty,oneof=admin usuario"`
}

// UpdateUserRequest replaces a user's profile fields. The password is changed
// through SetPasswordRequest.
type UpdateUserRequest struct {
	Name  string `json:"nombre" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"rol" binding:"required,oneof=admin usuario"`
}

// SetPasswordRequest sets a new password without checking the previous one.
type SetPasswordRequest struct {
	NewPassword string `json:"nueva" binding:"required,min=6"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain.User.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

// LoginRequest holds the credentials posted to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"contraseña" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"usuario"`
}
