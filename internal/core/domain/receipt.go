package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptType is the collection/payment role of a receipt.
type ReceiptType string

const (
	ReceiptTypeCollection ReceiptType = "cobro" // from a client
	ReceiptTypePayment    ReceiptType = "pago"  // to a supplier
)

// Valid reports whether t is cobro or pago.
func (t ReceiptType) Valid() bool {
	switch t {
	case ReceiptTypeCollection, ReceiptTypePayment:
		return true
	}
	return false
}

// PartyKind returns the kind of party a receipt of this type moves funds with.
func (t ReceiptType) PartyKind() PartyKind {
	if t == ReceiptTypePayment {
		return PartySupplier
	}
	return PartyClient
}

// InvoiceType returns the billing role settled by receipts of this type.
func (t ReceiptType) InvoiceType() InvoiceType {
	if t == ReceiptTypePayment {
		return InvoiceTypePurchase
	}
	return InvoiceTypeSale
}

// Check is a check instrument attached to a receipt.
type Check struct {
	CheckID      string          `json:"checkID"`
	ReceiptID    string          `json:"receiptID"`
	Position     int             `json:"position"`
	Kind         string          `json:"kind"`
	ClearingDate *time.Time      `json:"clearingDate,omitempty"`
	Bank         string          `json:"bank"`
	Number       string          `json:"number"`
	Amount       decimal.Decimal `json:"amount"`
}

// Receipt records funds collected from or paid to one party.
type Receipt struct {
	ReceiptID  string          `json:"receiptID"`
	Number     string          `json:"number"`
	Date       time.Time       `json:"date"`
	Type       ReceiptType     `json:"type"`
	ClientID   *string         `json:"clientID,omitempty"`
	SupplierID *string         `json:"supplierID,omitempty"`
	InvoiceID  *string         `json:"invoiceID,omitempty"`
	Cash       decimal.Decimal `json:"cash"`
	Transfer   decimal.Decimal `json:"transfer"`
	Other      decimal.Decimal `json:"other"`
	Notes      string          `json:"notes"`
	Total      decimal.Decimal `json:"total"`
	Checks     []Check         `json:"checks,omitempty"`
	AuditFields
}

// PartyID returns the client or supplier id that matches the receipt type.
func (r Receipt) PartyID() string {
	var id *string
	if r.Type == ReceiptTypePayment {
		id = r.SupplierID
	} else {
		id = r.ClientID
	}
	if id == nil {
		return ""
	}
	return *id
}

// ReceiptRecord is a receipt decorated with its party display name.
type ReceiptRecord struct {
	Receipt
	PartyName string `json:"partyName"`
}

// ReceiptFilter restricts ListReceipts. A nil PartyIDs means every party;
// an empty non-nil slice matches none.
type ReceiptFilter struct {
	Type     ReceiptType
	PartyIDs []string
	DateRange
}
