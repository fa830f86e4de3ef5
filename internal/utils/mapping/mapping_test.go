package mapping

import (
	"testing"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPartyMapping_EmptyStringsBecomeNull(t *testing.T) {
	m := ToModelParty(domain.Party{PartyID: "p1", Name: "Acme", Kind: domain.PartyClient})

	assert.Nil(t, m.Domicilio)
	assert.Nil(t, m.Email)
	assert.Nil(t, m.CUIT)

	back := ToDomainParty(m, domain.PartyClient)
	assert.Equal(t, "", back.Address)
	assert.Equal(t, domain.PartyClient, back.Kind)
}

func TestInvoiceMapping_KeepsUnknownSubtype(t *testing.T) {
	d := ToDomainInvoice(modelsInvoiceWithSubtype("remito"))
	assert.Equal(t, domain.DocumentSubtype("remito"), d.Subtype)
	assert.False(t, d.Subtype.Valid())
}

func TestReceiptCheckMapping(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := domain.Check{CheckID: "c1", ReceiptID: "r1", Position: 1, Bank: "Nación", ClearingDate: &due, Amount: decimal.NewFromInt(150)}

	m := ToModelReceiptCheck(c)
	assert.Nil(t, m.Tipo)
	assert.Equal(t, "Nación", *m.Banco)
	assert.Equal(t, c, ToDomainCheck(m))
}

func modelsInvoiceWithSubtype(subtype string) models.Invoice {
	return models.Invoice{ID: "f1", Tipo: "venta", Subtipo: subtype, Total: decimal.NewFromInt(10)}
}
