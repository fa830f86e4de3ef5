package domain

import "github.com/shopspring/decimal"

// Balance is the derived position of one party. It is never persisted.
type Balance struct {
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	Kind           PartyKind       `json:"kind"`
	TotalInvoiced  decimal.Decimal `json:"totalInvoiced"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	Saldo          decimal.Decimal `json:"saldo"`
}
