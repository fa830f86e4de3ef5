package dto

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse is one party's saldo. Clients carry total_cobrado and
// suppliers total_pagado.
type BalanceResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"nombre"`
	TotalInvoiced  decimal.Decimal  `json:"total_facturado" swaggertype:"string"`
	TotalCollected *decimal.Decimal `json:"total_cobrado,omitempty" swaggertype:"string"`
	TotalPaid      *decimal.Decimal `json:"total_pagado,omitempty" swaggertype:"string"`
	Saldo          decimal.Decimal  `json:"saldo" swaggertype:"string"`
}

// ToBalanceResponse converts a domain.Balance to its DTO.
func ToBalanceResponse(b domain.Balance) BalanceResponse {
	settled := b.TotalCollected
	resp := BalanceResponse{
		ID:            b.PartyID,
		Name:          b.PartyName,
		TotalInvoiced: b.TotalInvoiced,
		Saldo:         b.Saldo,
	}
	if b.Kind == domain.PartySupplier {
		resp.TotalPaid = &settled
	} else {
		resp.TotalCollected = &settled
	}
	return resp
}

// ToBalanceResponses converts a slice of balances.
func ToBalanceResponses(balances []domain.Balance) []BalanceResponse {
	out := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = ToBalanceResponse(b)
	}
	return out
}
