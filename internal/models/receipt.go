package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a row of the recibos table.
type Receipt struct {
	ID            string          `db:"id"`
	Numero        *string         `db:"numero"`
	Fecha         time.Time       `db:"fecha"`
	Tipo          string          `db:"tipo"`
	ClienteID     *string         `db:"cliente_id"`
	ProveedorID   *string         `db:"proveedor_id"`
	FacturaID     *string         `db:"factura_id"`
	Efectivo      decimal.Decimal `db:"efectivo"`
	Transferencia decimal.Decimal `db:"transferencia"`
	Otros         decimal.Decimal `db:"otros"`
	Observaciones *string         `db:"observaciones"`
	Total         decimal.Decimal `db:"total"`
	AuditFields
}

// ReceiptCheck is a row of the recibo_cheques table.
type ReceiptCheck struct {
	ID         string          `db:"id"`
	ReciboID   string          `db:"recibo_id"`
	Posicion   int             `db:"posicion"`
	Tipo       *string         `db:"tipo"`
	FechaCobro *time.Time      `db:"fecha_cobro"`
	Banco      *string         `db:"banco"`
	Numero     *string         `db:"numero"`
	Monto      decimal.Decimal `db:"monto"`
}
