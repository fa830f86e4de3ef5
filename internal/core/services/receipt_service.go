package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
	partyRepo   portsrepo.PartyReader
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, invoiceRepo portsrepo.InvoiceReader, partyRepo portsrepo.PartyReader) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: receiptRepo,
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func nonNegativeAmount(field string, d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, validationf("%s no puede ser negativo", field)
	}
	return accounting.Round2(d), nil
}

// buildReceipt validates the request and derives the total. It does not touch the store.
func buildReceipt(req dto.ReceiptRequest) (domain.Receipt, error) {
	role := domain.ReceiptType(strings.TrimSpace(req.Type))
	if !role.Valid() {
		return domain.Receipt{}, validationf("tipo debe ser \"cobro\" o \"pago\"")
	}
	date, err := dto.ParseDate("fecha", req.Date)
	if err != nil {
		return domain.Receipt{}, err
	}
	partyID, err := partyRef(role.PartyKind(), req.ClientID, req.SupplierID)
	if err != nil {
		return domain.Receipt{}, err
	}

	r := domain.Receipt{
		Number: strings.TrimSpace(req.Number),
		Date:   date,
		Type:   role,
		Notes:  strings.TrimSpace(req.Notes),
	}
	if role == domain.ReceiptTypePayment {
		r.SupplierID = &partyID
	} else {
		r.ClientID = &partyID
	}
	if id := trimmedPtr(req.InvoiceID); id != "" {
		r.InvoiceID = &id
	}

	if r.Cash, err = nonNegativeAmount("efectivo", req.Cash); err != nil {
		return domain.Receipt{}, err
	}
	if r.Transfer, err = nonNegativeAmount("transferencia", req.Transfer); err != nil {
		return domain.Receipt{}, err
	}
	if r.Other, err = nonNegativeAmount("otros", req.Other); err != nil {
		return domain.Receipt{}, err
	}

	r.Checks = make([]domain.Check, len(req.Checks))
	for i, c := range req.Checks {
		amount, err := nonNegativeAmount(fmt.Sprintf("cheques[%d].monto", i), c.Amount)
		if err != nil {
			return domain.Receipt{}, err
		}
		check := domain.Check{
			Position: i + 1,
			Kind:     strings.TrimSpace(c.Kind),
			Bank:     strings.TrimSpace(c.Bank),
			Number:   strings.TrimSpace(c.Number),
			Amount:   amount,
		}
		if check.ClearingDate, err = dto.ParseOptionalDate(fmt.Sprintf("cheques[%d].fecha_cobro", i), c.ClearingDate); err != nil {
			return domain.Receipt{}, err
		}
		r.Checks[i] = check
	}

	r.Total = accounting.ReceiptTotal(r)
	return r, nil
}

func assignCheckIDs(r *domain.Receipt) {
	for i := range r.Checks {
		r.Checks[i].CheckID = uuid.NewString()
		r.Checks[i].ReceiptID = r.ReceiptID
	}
}

// checkLinkedInvoice verifies that an optional invoice link points at an
// invoice of the matching role and party.
func (s *receiptService) checkLinkedInvoice(ctx context.Context, r domain.Receipt) error {
	if r.InvoiceID == nil {
		return nil
	}
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, *r.InvoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return validationf("la factura %s no existe", *r.InvoiceID)
		}
		return err
	}
	if inv.Type != r.Type.InvoiceType() || inv.PartyID() != r.PartyID() {
		return validationf("la factura %s no corresponde a esta entidad", *r.InvoiceID)
	}
	return nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.ReceiptRequest, creatorUserID string) (*domain.ReceiptRecord, error) {
	r, err := buildReceipt(req)
	if err != nil {
		return nil, err
	}
	party, err := lookupParty(ctx, s.partyRepo, r.Type.PartyKind(), r.PartyID())
	if err != nil {
		return nil, err
	}
	if err := s.checkLinkedInvoice(ctx, r); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.ReceiptID = uuid.NewString()
	r.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	assignCheckIDs(&r)

	if err := s.receiptRepo.CreateReceipt(ctx, r, r.Checks); err != nil {
		s.LogError(ctx, err, "Failed to create receipt", slog.String("number", r.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt created",
		slog.String("receipt_id", r.ReceiptID),
		slog.String("type", string(r.Type)),
		slog.String("total", r.Total.String()))
	return &domain.ReceiptRecord{Receipt: r, PartyName: party.Name}, nil
}

func (s *receiptService) ReplaceReceipt(ctx context.Context, receiptID string, req dto.ReceiptRequest, requestingUserID string) (*domain.ReceiptRecord, error) {
	r, err := buildReceipt(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load receipt for replace", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}
	party, err := lookupParty(ctx, s.partyRepo, r.Type.PartyKind(), r.PartyID())
	if err != nil {
		return nil, err
	}
	if err := s.checkLinkedInvoice(ctx, r); err != nil {
		return nil, err
	}

	r.ReceiptID = existing.ReceiptID
	r.AuditFields = existing.AuditFields
	r.LastUpdatedAt = time.Now().UTC()
	r.LastUpdatedBy = requestingUserID
	assignCheckIDs(&r)

	if err := s.receiptRepo.ReplaceReceipt(ctx, r, r.Checks); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to replace receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Receipt replaced", slog.String("receipt_id", r.ReceiptID), slog.Int("checks", len(r.Checks)))
	return &domain.ReceiptRecord{Receipt: r, PartyName: party.Name}, nil
}

func (s *receiptService) GetReceipt(ctx context.Context, receiptID string) (*domain.ReceiptRecord, error) {
	r, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	rec := &domain.ReceiptRecord{Receipt: *r}
	party, err := s.partyRepo.FindPartyByID(ctx, r.Type.PartyKind(), r.PartyID())
	switch {
	case err == nil:
		rec.PartyName = party.Name
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, "Receipt references a missing party", slog.String("receipt_id", receiptID))
	default:
		return nil, err
	}
	return rec, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		}
		return err
	}
	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}
