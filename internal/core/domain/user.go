package domain

// UserRole is the authorization role carried in issued tokens.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "usuario"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
