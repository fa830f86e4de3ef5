package dto

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line of an invoice request.
type LineItemRequest struct {
	Description string          `json:"descripcion" binding:"required"`
	Quantity    decimal.Decimal `json:"cantidad" binding:"gt=0" swaggertype:"string"`
	UnitPrice   decimal.Decimal `json:"precio_unitario" binding:"gte=0" swaggertype:"string"`
}

// InvoiceRequest is the body for creating or replacing an invoice. Totals are
// always computed server-side.
type InvoiceRequest struct {
	Number     string            `json:"numero" binding:"required"`
	Date       string            `json:"fecha" binding:"required,datetime=2006-01-02"`
	Type       string            `json:"tipo" binding:"required"`
	Subtype    string            `json:"subtipo"`
	ClientID   *string           `json:"cliente_id"`
	SupplierID *string           `json:"proveedor_id"`
	Items      []LineItemRequest `json:"items" binding:"dive"`
}

// LineItemResponse is the wire shape of a line item.
type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"descripcion"`
	Quantity    decimal.Decimal `json:"cantidad" swaggertype:"string"`
	UnitPrice   decimal.Decimal `json:"precio_unitario" swaggertype:"string"`
}

// InvoiceResponse is the wire shape of an invoice, decorated with its party name.
type InvoiceResponse struct {
	ID           string             `json:"id"`
	Number       string             `json:"numero"`
	Date         string             `json:"fecha"`
	Type         string             `json:"tipo"`
	Subtype      string             `json:"subtipo"`
	ClientID     *string            `json:"cliente_id"`
	SupplierID   *string            `json:"proveedor_id"`
	ClientName   *string            `json:"cliente_nombre,omitempty"`
	SupplierName *string            `json:"proveedor_nombre,omitempty"`
	Subtotal     decimal.Decimal    `json:"subtotal" swaggertype:"string"`
	Tax          decimal.Decimal    `json:"iva" swaggertype:"string"`
	Total        decimal.Decimal    `json:"total" swaggertype:"string"`
	Items        []LineItemResponse `json:"items,omitempty"`
}

// ToInvoiceResponse converts a decorated invoice to its DTO.
func ToInvoiceResponse(rec domain.InvoiceRecord) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         rec.InvoiceID,
		Number:     rec.Number,
		Date:       FormatDate(rec.Date),
		Type:       string(rec.Type),
		Subtype:    string(rec.Subtype),
		ClientID:   rec.ClientID,
		SupplierID: rec.SupplierID,
		Subtotal:   rec.Subtotal,
		Tax:        rec.Tax,
		Total:      rec.Total,
	}
	if rec.PartyName != "" {
		name := rec.PartyName
		if rec.Type == domain.InvoiceTypePurchase {
			resp.SupplierName = &name
		} else {
			resp.ClientName = &name
		}
	}
	for _, item := range rec.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			ID:          item.LineItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return resp
}

// ToInvoiceResponses converts a slice of decorated invoices.
func ToInvoiceResponses(recs []domain.InvoiceRecord) []InvoiceResponse {
	out := make([]InvoiceResponse, len(recs))
	for i, rec := range recs {
		out[i] = ToInvoiceResponse(rec)
	}
	return out
}
