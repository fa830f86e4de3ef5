package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type searchService struct {
	BaseService
	resolver    portssvc.PartyResolverSvc
	partyRepo   portsrepo.PartyReader
	invoiceRepo portsrepo.InvoiceReader
	receiptRepo portsrepo.ReceiptReader
	balances    portssvc.BalanceSvc
}

// NewSearchService composes name resolution, ledger filtering and balance
// aggregation.
func NewSearchService(
	resolver portssvc.PartyResolverSvc,
	partyRepo portsrepo.PartyReader,
	invoiceRepo portsrepo.InvoiceReader,
	receiptRepo portsrepo.ReceiptReader,
	balances portssvc.BalanceSvc,
) portssvc.SearchSvc {
	return &searchService{
		resolver:    resolver,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
		receiptRepo: receiptRepo,
		balances:    balances,
	}
}

var _ portssvc.SearchSvc = (*searchService)(nil)

// partyScope is the set of parties a search is restricted to. When restricted
// is false every party of the kind is in scope and names holds them all.
type partyScope struct {
	ids        []string
	names      map[string]string
	parties    []domain.Party
	restricted bool
}

func newPartyScope(parties []domain.Party, restricted bool) partyScope {
	scope := partyScope{
		names:      make(map[string]string, len(parties)),
		parties:    parties,
		restricted: restricted,
	}
	for _, p := range parties {
		scope.names[p.PartyID] = p.Name
		if restricted {
			scope.ids = append(scope.ids, p.PartyID)
		}
	}
	return scope
}

// empty reports whether a name filter matched nobody.
func (p partyScope) empty() bool {
	return p.restricted && len(p.parties) == 0
}

// resolveScope runs the name filter. With no fragment it returns nil and the
// caller lists every party of the kind alongside its document read.
func (s *searchService) resolveScope(ctx context.Context, kind domain.PartyKind, fragment string) (*partyScope, error) {
	if fragment == "" {
		return nil, nil
	}
	parties, err := s.resolver.ResolveByName(ctx, kind, fragment)
	if err != nil {
		return nil, err
	}
	scope := newPartyScope(parties, true)
	return &scope, nil
}

func (s *searchService) SearchInvoices(ctx context.Context, role domain.InvoiceType, nameFragment string, dates domain.DateRange) ([]domain.InvoiceRecord, error) {
	if err := validateInvoiceRole(role); err != nil {
		return nil, err
	}
	fragment := strings.TrimSpace(nameFragment)

	scope, err := s.resolveScope(ctx, role.PartyKind(), fragment)
	if err != nil {
		return nil, err
	}
	if scope != nil && scope.empty() {
		s.LogDebug(ctx, "No party matches invoice search", slog.String("fragment", fragment))
		return []domain.InvoiceRecord{}, nil
	}

	filter := domain.InvoiceFilter{Type: role, DateRange: dates}
	var invoices []domain.Invoice

	g, gctx := errgroup.WithContext(ctx)
	if scope == nil {
		g.Go(func() error {
			parties, err := s.partyRepo.ListParties(gctx, role.PartyKind())
			if err != nil {
				return fmt.Errorf("failed to list parties: %w", err)
			}
			all := newPartyScope(parties, false)
			scope = &all
			return nil
		})
	} else {
		filter.PartyIDs = scope.ids
	}
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.ListInvoices(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Invoice search failed", slog.String("role", string(role)))
		return nil, err
	}

	records := make([]domain.InvoiceRecord, 0, len(invoices))
	for _, inv := range invoices {
		records = append(records, domain.InvoiceRecord{Invoice: inv, PartyName: scope.names[inv.PartyID()]})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

func (s *searchService) SearchReceipts(ctx context.Context, role domain.ReceiptType, nameFragment string, dates domain.DateRange) ([]domain.ReceiptRecord, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: tipo debe ser \"cobro\" o \"pago\"", apperrors.ErrValidation)
	}
	fragment := strings.TrimSpace(nameFragment)

	scope, err := s.resolveScope(ctx, role.PartyKind(), fragment)
	if err != nil {
		return nil, err
	}
	if scope != nil && scope.empty() {
		s.LogDebug(ctx, "No party matches receipt search", slog.String("fragment", fragment))
		return []domain.ReceiptRecord{}, nil
	}

	filter := domain.ReceiptFilter{Type: role, DateRange: dates}
	var receipts []domain.Receipt

	g, gctx := errgroup.WithContext(ctx)
	if scope == nil {
		g.Go(func() error {
			parties, err := s.partyRepo.ListParties(gctx, role.PartyKind())
			if err != nil {
				return fmt.Errorf("failed to list parties: %w", err)
			}
			all := newPartyScope(parties, false)
			scope = &all
			return nil
		})
	} else {
		filter.PartyIDs = scope.ids
	}
	g.Go(func() error {
		var err error
		receipts, err = s.receiptRepo.ListReceipts(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list receipts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Receipt search failed", slog.String("role", string(role)))
		return nil, err
	}

	records := make([]domain.ReceiptRecord, 0, len(receipts))
	for _, r := range receipts {
		records = append(records, domain.ReceiptRecord{Receipt: r, PartyName: scope.names[r.PartyID()]})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

// SearchBalances is the date-filtered balance variant. Without a fragment it
// covers every party of the role.
func (s *searchService) SearchBalances(ctx context.Context, role domain.InvoiceType, nameFragment string, dates domain.DateRange) ([]domain.Balance, error) {
	if err := validateInvoiceRole(role); err != nil {
		return nil, err
	}
	fragment := strings.TrimSpace(nameFragment)

	scope, err := s.resolveScope(ctx, role.PartyKind(), fragment)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return s.balances.ComputeBalancesInRange(ctx, role, dates)
	}
	if scope.empty() {
		s.LogDebug(ctx, "No party matches balance search", slog.String("fragment", fragment))
		return []domain.Balance{}, nil
	}
	return s.balances.ComputeBalancesForParties(ctx, role, scope.parties, dates)
}
