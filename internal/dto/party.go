package dto

import (
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// PartyRequest is the body for creating or replacing a client or supplier.
type PartyRequest struct {
	Name    string  `json:"nombre" binding:"required,max=255"`
	Address string  `json:"domicilio" binding:"max=255"`
	TaxID   *string `json:"cuit" binding:"omitempty,cuit"`
	Email   string  `json:"email" binding:"omitempty,email"`
	Phone   string  `json:"telefono" binding:"max=50"`
}

// PartyResponse is the wire shape of a client or supplier.
type PartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Address   string    `json:"domicilio"`
	TaxID     *string   `json:"cuit"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPartyResponse converts a domain.Party to a PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		ID:        p.PartyID,
		Name:      p.Name,
		Address:   p.Address,
		TaxID:     p.TaxID,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}

// ToPartyResponses converts a slice of parties.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	out := make([]PartyResponse, len(parties))
	for i := range parties {
		out[i] = ToPartyResponse(&parties[i])
	}
	return out
}
