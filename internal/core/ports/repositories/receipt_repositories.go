package repositories

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt together with its checks.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts returns receipts matching the filter ordered by date, newest
	// first, each with its checks loaded.
	ListReceipts(ctx context.Context, filter domain.ReceiptFilter) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt data. Each call is atomic
// across the receipt row and its checks.
type ReceiptWriter interface {
	CreateReceipt(ctx context.Context, receipt domain.Receipt, checks []domain.Check) error

	// ReplaceReceipt updates the receipt row and swaps its entire check set.
	ReplaceReceipt(ctx context.Context, receipt domain.Receipt, checks []domain.Check) error

	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
