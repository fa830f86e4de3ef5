package domain

// PartyKind distinguishes clients from suppliers.
type PartyKind string

const (
	PartyClient   PartyKind = "cliente"
	PartySupplier PartyKind = "proveedor"
)

// Valid reports whether k is a known party kind.
func (k PartyKind) Valid() bool {
	switch k {
	case PartyClient, PartySupplier:
		return true
	}
	return false
}

// InvoiceType returns the billing role that applies to parties of this kind.
func (k PartyKind) InvoiceType() InvoiceType {
	if k == PartySupplier {
		return InvoiceTypePurchase
	}
	return InvoiceTypeSale
}

// Party is a client or a supplier.
type Party struct {
	PartyID string    `json:"partyID"`
	Kind    PartyKind `json:"kind"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	TaxID   *string   `json:"taxID,omitempty"` // CUIT, unique per kind when present
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	AuditFields
}
