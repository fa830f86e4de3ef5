package mapping

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its row.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:          d.InvoiceID,
		Numero:      d.Number,
		Fecha:       d.Date,
		Tipo:        string(d.Type),
		Subtipo:     string(d.Subtype),
		ClienteID:   d.ClientID,
		ProveedorID: d.SupplierID,
		Subtotal:    d.Subtotal,
		IVA:         d.Tax,
		Total:       d.Total,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts an invoice row to a domain.Invoice without items.
// The subtype is carried verbatim so unknown values reach the classifier.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.ID,
		Number:      m.Numero,
		Date:        m.Fecha,
		Type:        domain.InvoiceType(m.Tipo),
		Subtype:     domain.DocumentSubtype(m.Subtipo),
		ClientID:    m.ClienteID,
		SupplierID:  m.ProveedorID,
		Subtotal:    m.Subtotal,
		Tax:         m.IVA,
		Total:       m.Total,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceItem converts a domain.LineItem to its row.
func ToModelInvoiceItem(d domain.LineItem) models.InvoiceItem {
	return models.InvoiceItem{
		ID:             d.LineItemID,
		FacturaID:      d.InvoiceID,
		Posicion:       d.Position,
		Descripcion:    d.Description,
		Cantidad:       d.Quantity,
		PrecioUnitario: d.UnitPrice,
	}
}

// ToDomainLineItem converts an item row to a domain.LineItem.
func ToDomainLineItem(m models.InvoiceItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:  m.ID,
		InvoiceID:   m.FacturaID,
		Position:    m.Posicion,
		Description: m.Descripcion,
		Quantity:    m.Cantidad,
		UnitPrice:   m.PrecioUnitario,
	}
}
