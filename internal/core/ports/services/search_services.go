package services

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// SearchSvc answers name and date-range restricted queries over the ledger.
// An empty name fragment means every party; a fragment matching nobody
// returns an empty result without reading any document.
type SearchSvc interface {
	SearchInvoices(ctx context.Context, role domain.InvoiceType, nameFragment string, dates domain.DateRange) ([]domain.InvoiceRecord, error)
	SearchReceipts(ctx context.Context, role domain.ReceiptType, nameFragment string, dates domain.DateRange) ([]domain.ReceiptRecord, error)
	SearchBalances(ctx context.Context, role domain.InvoiceType, nameFragment string, dates domain.DateRange) ([]domain.Balance, error)
}
