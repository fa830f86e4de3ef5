package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// balanceService implements portssvc.BalanceSvc. It holds no state between
// calls; every result is recomputed from the current ledger rows.
type balanceService struct {
	BaseService
	partyRepo   portsrepo.PartyReader
	invoiceRepo portsrepo.InvoiceReader
	receiptRepo portsrepo.ReceiptReader
}

// NewBalanceService creates a new balance service reading from the given stores.
func NewBalanceService(partyRepo portsrepo.PartyReader, invoiceRepo portsrepo.InvoiceReader, receiptRepo portsrepo.ReceiptReader) portssvc.BalanceSvc {
	return &balanceService{
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
		receiptRepo: receiptRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func validateInvoiceRole(role domain.InvoiceType) error {
	if !role.Valid() {
		return fmt.Errorf("%w: tipo debe ser \"venta\" o \"compra\"", apperrors.ErrValidation)
	}
	return nil
}

// ComputeBalance returns the all-time balance of a single party.
func (s *balanceService) ComputeBalance(ctx context.Context, partyID string, role domain.InvoiceType) (*domain.Balance, error) {
	if err := validateInvoiceRole(role); err != nil {
		return nil, err
	}
	if partyID == "" {
		return nil, fmt.Errorf("%w: se requiere el id de la entidad", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, role.PartyKind(), partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load party for balance", slog.String("party_id", partyID))
		}
		return nil, err
	}

	balances, err := s.ComputeBalancesForParties(ctx, role, []domain.Party{*party}, domain.DateRange{})
	if err != nil {
		return nil, err
	}
	return &balances[0], nil
}

// ComputeBalancesForAllParties returns the all-time balance of every party of the role.
func (s *balanceService) ComputeBalancesForAllParties(ctx context.Context, role domain.InvoiceType) ([]domain.Balance, error) {
	return s.ComputeBalancesInRange(ctx, role, domain.DateRange{})
}

// ComputeBalancesInRange is ComputeBalancesForAllParties restricted to documents dated inside the range.
func (s *balanceService) ComputeBalancesInRange(ctx context.Context, role domain.InvoiceType, dates domain.DateRange) ([]domain.Balance, error) {
	if err := validateInvoiceRole(role); err != nil {
		return nil, err
	}

	var (
		parties  []domain.Party
		invoices []domain.Invoice
		receipts []domain.Receipt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parties, err = s.partyRepo.ListParties(gctx, role.PartyKind())
		if err != nil {
			return fmt.Errorf("failed to list parties: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.ListInvoices(gctx, domain.InvoiceFilter{Type: role, DateRange: dates})
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		receipts, err = s.receiptRepo.ListReceipts(gctx, domain.ReceiptFilter{Type: role.ReceiptType(), DateRange: dates})
		if err != nil {
			return fmt.Errorf("failed to list receipts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to read ledger for balances", slog.String("role", string(role)))
		return nil, err
	}

	return s.fold(ctx, role, parties, dates, invoices, receipts), nil
}

// ComputeBalancesForParties aggregates the documents of the given parties only.
func (s *balanceService) ComputeBalancesForParties(ctx context.Context, role domain.InvoiceType, parties []domain.Party, dates domain.DateRange) ([]domain.Balance, error) {
	if err := validateInvoiceRole(role); err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return []domain.Balance{}, nil
	}

	ids := make([]string, len(parties))
	for i, p := range parties {
		ids[i] = p.PartyID
	}

	var (
		invoices []domain.Invoice
		receipts []domain.Receipt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.ListInvoices(gctx, domain.InvoiceFilter{Type: role, PartyIDs: ids, DateRange: dates})
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		receipts, err = s.receiptRepo.ListReceipts(gctx, domain.ReceiptFilter{Type: role.ReceiptType(), PartyIDs: ids, DateRange: dates})
		if err != nil {
			return fmt.Errorf("failed to list receipts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to read ledger for balances", slog.String("role", string(role)), slog.Int("party_count", len(ids)))
		return nil, err
	}

	return s.fold(ctx, role, parties, dates, invoices, receipts), nil
}

// fold nets the classified invoice totals against receipt totals and emits one
// balance per party, in the order the parties were given. Documents dated
// outside dates are ignored even if the store returned them.
func (s *balanceService) fold(ctx context.Context, role domain.InvoiceType, parties []domain.Party, dates domain.DateRange, invoices []domain.Invoice, receipts []domain.Receipt) []domain.Balance {
	bounded := !dates.IsZero()

	invoiced := make(map[string]decimal.Decimal, len(parties))
	collected := make(map[string]decimal.Decimal, len(parties))

	for _, inv := range invoices {
		if inv.Type != role || (bounded && !dates.Contains(inv.Date)) {
			continue
		}
		signed, err := accounting.SignedInvoiceTotal(inv)
		if err != nil {
			s.LogWarn(ctx, "Excluding invoice with unrecognized subtype from balance",
				slog.String("invoice_id", inv.InvoiceID),
				slog.String("subtype", string(inv.Subtype)))
			continue
		}
		id := inv.PartyID()
		invoiced[id] = amountOf(invoiced, id).Add(signed)
	}

	receiptRole := role.ReceiptType()
	for _, r := range receipts {
		if r.Type != receiptRole || (bounded && !dates.Contains(r.Date)) {
			continue
		}
		id := r.PartyID()
		collected[id] = amountOf(collected, id).Add(accounting.ReceiptTotal(r))
	}

	balances := make([]domain.Balance, 0, len(parties))
	for _, p := range parties {
		totalInvoiced := amountOf(invoiced, p.PartyID)
		totalCollected := amountOf(collected, p.PartyID)
		balances = append(balances, domain.Balance{
			PartyID:        p.PartyID,
			PartyName:      p.Name,
			Kind:           role.PartyKind(),
			TotalInvoiced:  totalInvoiced,
			TotalCollected: totalCollected,
			Saldo:          accounting.Round2(totalInvoiced.Sub(totalCollected)),
		})
	}
	return balances
}

func amountOf(m map[string]decimal.Decimal, id string) decimal.Decimal {
	if v, ok := m[id]; ok {
		return v
	}
	return decimal.Zero
}
