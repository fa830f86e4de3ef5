package services_test

import (
	"errors"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func client(id, name string) domain.Party {
	return domain.Party{PartyID: id, Kind: domain.PartyClient, Name: name}
}

func sale(id, clientID, subtype, total, date string) domain.Invoice {
	return domain.Invoice{
		InvoiceID: id,
		Type:      domain.InvoiceTypeSale,
		Subtype:   domain.DocumentSubtype(subtype),
		ClientID:  ptr(clientID),
		Total:     dec(total),
		Date:      day(date),
	}
}

func collection(id, clientID, cash, date string, checks ...string) domain.Receipt {
	r := domain.Receipt{
		ReceiptID: id,
		Type:      domain.ReceiptTypeCollection,
		ClientID:  ptr(clientID),
		Cash:      dec(cash),
		Date:      day(date),
	}
	for i, amount := range checks {
		r.Checks = append(r.Checks, domain.Check{Position: i + 1, Amount: dec(amount)})
	}
	return r
}

var assertErr = errors.New("connection refused")
