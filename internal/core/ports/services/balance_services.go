package services

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// BalanceSvc nets each party's signed invoice totals against what was
// collected from or paid to it.
type BalanceSvc interface {
	// ComputeBalance returns the all-time balance of one party. A party with
	// no documents yields zeros; an unknown party is ErrNotFound.
	ComputeBalance(ctx context.Context, partyID string, role domain.InvoiceType) (*domain.Balance, error)

	// ComputeBalancesForAllParties returns one balance per known party of the
	// role, including parties without any activity.
	ComputeBalancesForAllParties(ctx context.Context, role domain.InvoiceType) ([]domain.Balance, error)

	// ComputeBalancesInRange is the batch variant restricted to documents
	// dated inside the range.
	ComputeBalancesInRange(ctx context.Context, role domain.InvoiceType, dates domain.DateRange) ([]domain.Balance, error)

	// ComputeBalancesForParties aggregates only documents of the given parties
	// that fall inside the date range.
	ComputeBalancesForParties(ctx context.Context, role domain.InvoiceType, parties []domain.Party, dates domain.DateRange) ([]domain.Balance, error)
}
