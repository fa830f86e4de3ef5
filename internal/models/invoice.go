package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the facturas table.
type Invoice struct {
	ID          string          `db:"id"`
	Numero      string          `db:"numero"`
	Fecha       time.Time       `db:"fecha"`
	Tipo        string          `db:"tipo"`
	Subtipo     string          `db:"subtipo"`
	ClienteID   *string         `db:"cliente_id"`
	ProveedorID *string         `db:"proveedor_id"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	IVA         decimal.Decimal `db:"iva"`
	Total       decimal.Decimal `db:"total"`
	AuditFields
}

// InvoiceItem is a row of the factura_items table.
type InvoiceItem struct {
	ID             string          `db:"id"`
	FacturaID      string          `db:"factura_id"`
	Posicion       int             `db:"posicion"`
	Descripcion    string          `db:"descripcion"`
	Cantidad       decimal.Decimal `db:"cantidad"`
	PrecioUnitario decimal.Decimal `db:"precio_unitario"`
}
