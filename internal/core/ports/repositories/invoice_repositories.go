package repositories

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice together with its line items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns invoices matching the filter ordered by date, newest
	// first. Line items are not loaded.
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data. Each call is atomic
// across the invoice row and its line items.
type InvoiceWriter interface {
	CreateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error

	// ReplaceInvoice updates the invoice row and swaps its entire line-item set.
	ReplaceInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error

	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
