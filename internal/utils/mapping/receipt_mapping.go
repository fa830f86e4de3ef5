package mapping

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
)

// ToModelReceipt converts a domain.Receipt to its row.
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ID:            d.ReceiptID,
		Numero:        optional(d.Number),
		Fecha:         d.Date,
		Tipo:          string(d.Type),
		ClienteID:     d.ClientID,
		ProveedorID:   d.SupplierID,
		FacturaID:     d.InvoiceID,
		Efectivo:      d.Cash,
		Transferencia: d.Transfer,
		Otros:         d.Other,
		Observaciones: optional(d.Notes),
		Total:         d.Total,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a receipt row to a domain.Receipt without checks.
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:   m.ID,
		Number:      deref(m.Numero),
		Date:        m.Fecha,
		Type:        domain.ReceiptType(m.Tipo),
		ClientID:    m.ClienteID,
		SupplierID:  m.ProveedorID,
		InvoiceID:   m.FacturaID,
		Cash:        m.Efectivo,
		Transfer:    m.Transferencia,
		Other:       m.Otros,
		Notes:       deref(m.Observaciones),
		Total:       m.Total,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReceiptCheck converts a domain.Check to its row.
func ToModelReceiptCheck(d domain.Check) models.ReceiptCheck {
	return models.ReceiptCheck{
		ID:         d.CheckID,
		ReciboID:   d.ReceiptID,
		Posicion:   d.Position,
		Tipo:       optional(d.Kind),
		FechaCobro: d.ClearingDate,
		Banco:      optional(d.Bank),
		Numero:     optional(d.Number),
		Monto:      d.Amount,
	}
}

// ToDomainCheck converts a check row to a domain.Check.
func ToDomainCheck(m models.ReceiptCheck) domain.Check {
	return domain.Check{
		CheckID:      m.ID,
		ReceiptID:    m.ReciboID,
		Position:     m.Posicion,
		Kind:         deref(m.Tipo),
		ClearingDate: m.FechaCobro,
		Bank:         deref(m.Banco),
		Number:       deref(m.Numero),
		Amount:       m.Monto,
	}
}
