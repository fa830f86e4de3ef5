package services

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
)

// InvoiceSvcFacade validates and persists invoices with their line items.
// Listing by type goes through SearchSvc.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.InvoiceRequest, creatorUserID string) (*domain.InvoiceRecord, error)
	ReplaceInvoice(ctx context.Context, invoiceID string, req dto.InvoiceRequest, requestingUserID string) (*domain.InvoiceRecord, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.InvoiceRecord, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
