package services

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
)

// ReceiptSvcFacade validates and persists receipts with their checks.
// Listing by type goes through SearchSvc.
type ReceiptSvcFacade interface {
	CreateReceipt(ctx context.Context, req dto.ReceiptRequest, creatorUserID string) (*domain.ReceiptRecord, error)
	ReplaceReceipt(ctx context.Context, receiptID string, req dto.ReceiptRequest, requestingUserID string) (*domain.ReceiptRecord, error)
	GetReceipt(ctx context.Context, receiptID string) (*domain.ReceiptRecord, error)
	DeleteReceipt(ctx context.Context, receiptID string) error
}
