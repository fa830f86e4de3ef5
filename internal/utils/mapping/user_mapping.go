package mapping

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
)

// ToModelUser converts a domain.User to its row.
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:           d.UserID,
		Nombre:       d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Rol:          string(d.Role),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a user row to a domain.User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.ID,
		Name:         m.Nombre,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Rol),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
