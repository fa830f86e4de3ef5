package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_x\\y`, escapeLike(`50% off_x\y`))
	assert.Equal(t, "acme", escapeLike("acme"))
}

func TestLedgerWhere(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("no filters", func(t *testing.T) {
		where, args := ledgerWhere("", domain.PartyClient, nil, domain.DateRange{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("supplier scope with range", func(t *testing.T) {
		ids := []string{"p1", "p2"}
		where, args := ledgerWhere("compra", domain.PartySupplier, ids, domain.DateRange{From: &from, To: &to})
		assert.Equal(t, " WHERE tipo = $1 AND proveedor_id = ANY($2) AND fecha >= $3 AND fecha <= $4", where)
		assert.Equal(t, []any{"compra", ids, from, to}, args)
	})

	t.Run("empty scope still restricts", func(t *testing.T) {
		where, _ := ledgerWhere("venta", domain.PartyClient, []string{}, domain.DateRange{})
		assert.Contains(t, where, "cliente_id = ANY($2)")
	})
}

func TestMapStoreError(t *testing.T) {
	assert.ErrorIs(t, mapStoreError(pgx.ErrNoRows, "x"), apperrors.ErrNotFound)
	assert.ErrorIs(t, mapStoreError(&pgconn.PgError{Code: pgUniqueViolation}, "x"), apperrors.ErrDuplicate)
	assert.ErrorIs(t, mapStoreError(&pgconn.PgError{Code: pgForeignKeyViolation}, "x"), apperrors.ErrValidation)
	assert.ErrorIs(t, mapStoreError(&pgconn.PgError{Code: pgInvalidTextRepr}, "x"), apperrors.ErrNotFound)
	assert.ErrorIs(t, mapStoreError(errors.New("connection refused"), "x"), apperrors.ErrStoreUnavailable)
}

func TestPartyTable(t *testing.T) {
	table, err := partyTable(domain.PartySupplier)
	assert.NoError(t, err)
	assert.Equal(t, "proveedores", table)

	_, err = partyTable("otro")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSnapshotTxOptions(t *testing.T) {
	// header and child rows must be read from one consistent, read-only snapshot
	assert.Equal(t, pgx.RepeatableRead, snapshotTxOptions.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, snapshotTxOptions.AccessMode)
}
