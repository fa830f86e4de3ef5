package dto

import (
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckRequest is one check attached to a receipt request.
type CheckRequest struct {
	Kind         string          `json:"tipo"`
	ClearingDate string          `json:"fecha_cobro" binding:"omitempty,datetime=2006-01-02"`
	Bank         string          `json:"banco"`
	Number       string          `json:"numero"`
	Amount       decimal.Decimal `json:"monto" binding:"gte=0" swaggertype:"string"`
}

// ReceiptRequest is the body for creating or replacing a receipt.
type ReceiptRequest struct {
	Number     string          `json:"numero"`
	Date       string          `json:"fecha" binding:"required,datetime=2006-01-02"`
	Type       string          `json:"tipo" binding:"required"`
	ClientID   *string         `json:"cliente_id"`
	SupplierID *string         `json:"proveedor_id"`
	InvoiceID  *string         `json:"factura_id"`
	Cash       decimal.Decimal `json:"efectivo" binding:"gte=0" swaggertype:"string"`
	Transfer   decimal.Decimal `json:"transferencia" binding:"gte=0" swaggertype:"string"`
	Other      decimal.Decimal `json:"otros" binding:"gte=0" swaggertype:"string"`
	Notes      string          `json:"observaciones"`
	Checks     []CheckRequest  `json:"cheques" binding:"dive"`
}

// CheckResponse is the wire shape of a check.
type CheckResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"tipo"`
	ClearingDate *string         `json:"fecha_cobro"`
	Bank         string          `json:"banco"`
	Number       string          `json:"numero"`
	Amount       decimal.Decimal `json:"monto" swaggertype:"string"`
}

// ReceiptResponse is the wire shape of a receipt, decorated with its party name.
type ReceiptResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"numero"`
	Date         string          `json:"fecha"`
	Type         string          `json:"tipo"`
	ClientID     *string         `json:"cliente_id"`
	SupplierID   *string         `json:"proveedor_id"`
	ClientName   *string         `json:"cliente_nombre,omitempty"`
	SupplierName *string         `json:"proveedor_nombre,omitempty"`
	InvoiceID    *string         `json:"factura_id"`
	Cash         decimal.Decimal `json:"efectivo" swaggertype:"string"`
	Transfer     decimal.Decimal `json:"transferencia" swaggertype:"string"`
	Other        decimal.Decimal `json:"otros" swaggertype:"string"`
	Notes        string          `json:"observaciones"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
	Checks       []CheckResponse `json:"cheques,omitempty"`
}

// ToReceiptResponse converts a decorated receipt to its DTO.
func ToReceiptResponse(rec domain.ReceiptRecord) ReceiptResponse {
	resp := ReceiptResponse{
		ID:         rec.ReceiptID,
		Number:     rec.Number,
		Date:       FormatDate(rec.Date),
		Type:       string(rec.Type),
		ClientID:   rec.ClientID,
		SupplierID: rec.SupplierID,
		InvoiceID:  rec.InvoiceID,
		Cash:       rec.Cash,
		Transfer:   rec.Transfer,
		Other:      rec.Other,
		Notes:      rec.Notes,
		Total:      rec.Total,
	}
	if rec.PartyName != "" {
		name := rec.PartyName
		if rec.Type == domain.ReceiptTypePayment {
			resp.SupplierName = &name
		} else {
			resp.ClientName = &name
		}
	}
	for _, c := range rec.Checks {
		cr := CheckResponse{
			ID:     c.CheckID,
			Kind:   c.Kind,
			Bank:   c.Bank,
			Number: c.Number,
			Amount: c.Amount,
		}
		if c.ClearingDate != nil {
			d := FormatDate(*c.ClearingDate)
			cr.ClearingDate = &d
		}
		resp.Checks = append(resp.Checks, cr)
	}
	return resp
}

// ToReceiptResponses converts a slice of decorated receipts.
func ToReceiptResponses(recs []domain.ReceiptRecord) []ReceiptResponse {
	out := make([]ReceiptResponse, len(recs))
	for i, rec := range recs {
		out[i] = ToReceiptResponse(rec)
	}
	return out
}
