package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType is the billing role of an invoice.
type InvoiceType string

const (
	InvoiceTypeSale     InvoiceType = "venta"  // client billing
	InvoiceTypePurchase InvoiceType = "compra" // supplier billing
)

// Valid reports whether t is venta or compra.
func (t InvoiceType) Valid() bool {
	switch t {
	case InvoiceTypeSale, InvoiceTypePurchase:
		return true
	}
	return false
}

// PartyKind returns the kind of party an invoice of this type is billed to.
func (t InvoiceType) PartyKind() PartyKind {
	if t == InvoiceTypePurchase {
		return PartySupplier
	}
	return PartyClient
}

// ReceiptType returns the receipt role that settles invoices of this type.
func (t InvoiceType) ReceiptType() ReceiptType {
	if t == InvoiceTypePurchase {
		return ReceiptTypePayment
	}
	return ReceiptTypeCollection
}

// DocumentSubtype distinguishes plain invoices from notes and opening balances.
type DocumentSubtype string

const (
	SubtypeInvoice        DocumentSubtype = "factura"
	SubtypeCreditNote     DocumentSubtype = "nota de crédito"
	SubtypeDebitNote      DocumentSubtype = "nota de débito"
	SubtypeOpeningBalance DocumentSubtype = "saldo inicial"
)

// Valid reports whether s is one of the known subtypes.
func (s DocumentSubtype) Valid() bool {
	switch s {
	case SubtypeInvoice, SubtypeCreditNote, SubtypeDebitNote, SubtypeOpeningBalance:
		return true
	}
	return false
}

// LineItem is one billed line of an invoice.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`
	InvoiceID   string          `json:"invoiceID"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Amount is quantity times unit price, unrounded.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Invoice is a billing document against exactly one party.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"`
	Number     string          `json:"number"`
	Date       time.Time       `json:"date"`
	Type       InvoiceType     `json:"type"`
	Subtype    DocumentSubtype `json:"subtype"`
	ClientID   *string         `json:"clientID,omitempty"`
	SupplierID *string         `json:"supplierID,omitempty"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Items      []LineItem      `json:"items,omitempty"`
	AuditFields
}

// PartyID returns the client or supplier id that matches the invoice type.
func (i Invoice) PartyID() string {
	var id *string
	if i.Type == InvoiceTypePurchase {
		id = i.SupplierID
	} else {
		id = i.ClientID
	}
	if id == nil {
		return ""
	}
	return *id
}

// InvoiceRecord is an invoice decorated with its party display name.
type InvoiceRecord struct {
	Invoice
	PartyName string `json:"partyName"`
}

// InvoiceFilter restricts ListInvoices. A nil PartyIDs means every party;
// an empty non-nil slice matches none.
type InvoiceFilter struct {
	Type     InvoiceType
	PartyIDs []string
	DateRange
}
