package mapping

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
)

// ToModelParty converts a domain.Party to its row.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		ID:          d.PartyID,
		Nombre:      d.Name,
		Domicilio:   optional(d.Address),
		CUIT:        d.TaxID,
		Email:       optional(d.Email),
		Telefono:    optional(d.Phone),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a row of the given kind's table to a domain.Party.
func ToDomainParty(m models.Party, kind domain.PartyKind) domain.Party {
	return domain.Party{
		PartyID:     m.ID,
		Kind:        kind,
		Name:        m.Nombre,
		Address:     deref(m.Domicilio),
		TaxID:       m.CUIT,
		Email:       deref(m.Email),
		Phone:       deref(m.Telefono),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
