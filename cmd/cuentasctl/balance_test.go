package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBalances(t *testing.T) {
	var buf bytes.Buffer
	err := printBalances(&buf, domain.InvoiceTypePurchase, []domain.Balance{{
		PartyID:        "p1",
		PartyName:      "Acme",
		Kind:           domain.PartySupplier,
		TotalInvoiced:  decimal.NewFromInt(800),
		TotalCollected: decimal.NewFromInt(650),
		Saldo:          decimal.NewFromInt(150),
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "PAGADO")
	assert.Equal(t, []string{"p1", "Acme", "800.00", "650.00", "150.00"}, strings.Fields(lines[1]))
}

func TestMigrateArgs(t *testing.T) {
	assert.Error(t, migrateCmd.Args(migrateCmd, []string{"sideways"}))
	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"up"}))
}
