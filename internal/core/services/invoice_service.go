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
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	partyRepo   portsrepo.PartyReader
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, partyRepo portsrepo.PartyReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperrors.ErrValidation}, args...)...)
}

// partyRef checks that exactly the id matching the role is set and returns it.
func partyRef(kind domain.PartyKind, clientID, supplierID *string) (string, error) {
	client := trimmedPtr(clientID)
	supplier := trimmedPtr(supplierID)

	if kind == domain.PartySupplier {
		if supplier == "" {
			return "", validationf("proveedor_id es obligatorio para compras y pagos")
		}
		if client != "" {
			return "", validationf("cliente_id no corresponde a un documento de proveedor")
		}
		return supplier, nil
	}
	if client == "" {
		return "", validationf("cliente_id es obligatorio para ventas y cobros")
	}
	if supplier != "" {
		return "", validationf("proveedor_id no corresponde a un documento de cliente")
	}
	return client, nil
}

func trimmedPtr(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// lookupParty loads the referenced party, turning an absent id into a validation error.
func lookupParty(ctx context.Context, repo portsrepo.PartyReader, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	party, err := repo.FindPartyByID(ctx, kind, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, validationf("el %s %s no existe", kind, partyID)
		}
		return nil, err
	}
	return party, nil
}

// buildInvoice validates the request and derives totals. It does not touch the store.
func buildInvoice(req dto.InvoiceRequest) (domain.Invoice, error) {
	role := domain.InvoiceType(strings.TrimSpace(req.Type))
	if err := validateInvoiceRole(role); err != nil {
		return domain.Invoice{}, err
	}
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return domain.Invoice{}, validationf("numero es obligatorio")
	}
	date, err := dto.ParseDate("fecha", req.Date)
	if err != nil {
		return domain.Invoice{}, err
	}

	subtype := domain.DocumentSubtype(strings.TrimSpace(req.Subtype))
	if subtype == "" {
		subtype = domain.SubtypeInvoice
	}
	if !subtype.Valid() {
		return domain.Invoice{}, validationf("subtipo %q no es válido", string(subtype))
	}

	partyID, err := partyRef(role.PartyKind(), req.ClientID, req.SupplierID)
	if err != nil {
		return domain.Invoice{}, err
	}

	if len(req.Items) == 0 {
		return domain.Invoice{}, validationf("la factura debe tener al menos un ítem")
	}
	items := make([]domain.LineItem, len(req.Items))
	for i, it := range req.Items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			return domain.Invoice{}, validationf("items[%d]: la descripción es obligatoria", i)
		}
		// Totals are derived from the two-decimal values the store keeps.
		qty := accounting.Round2(it.Quantity)
		if !qty.IsPositive() {
			return domain.Invoice{}, validationf("items[%d]: la cantidad debe ser mayor a cero", i)
		}
		price, err := nonNegativeAmount(fmt.Sprintf("items[%d]: el precio unitario", i), it.UnitPrice)
		if err != nil {
			return domain.Invoice{}, err
		}
		items[i] = domain.LineItem{
			Position:    i + 1,
			Description: desc,
			Quantity:    qty,
			UnitPrice:   price,
		}
	}

	inv := domain.Invoice{
		Number:  number,
		Date:    date,
		Type:    role,
		Subtype: subtype,
		Items:   items,
	}
	if role == domain.InvoiceTypePurchase {
		inv.SupplierID = &partyID
	} else {
		inv.ClientID = &partyID
	}
	inv.Subtotal, inv.Tax, inv.Total = accounting.InvoiceTotals(items)
	return inv, nil
}

func assignLineItemIDs(inv *domain.Invoice) {
	for i := range inv.Items {
		inv.Items[i].LineItemID = uuid.NewString()
		inv.Items[i].InvoiceID = inv.InvoiceID
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.InvoiceRequest, creatorUserID string) (*domain.InvoiceRecord, error) {
	inv, err := buildInvoice(req)
	if err != nil {
		return nil, err
	}
	party, err := lookupParty(ctx, s.partyRepo, inv.Type.PartyKind(), inv.PartyID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv.InvoiceID = uuid.NewString()
	inv.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	assignLineItemIDs(&inv)

	if err := s.invoiceRepo.CreateInvoice(ctx, inv, inv.Items); err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("number", inv.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("type", string(inv.Type)),
		slog.String("total", inv.Total.String()))
	return &domain.InvoiceRecord{Invoice: inv, PartyName: party.Name}, nil
}

func (s *invoiceService) ReplaceInvoice(ctx context.Context, invoiceID string, req dto.InvoiceRequest, requestingUserID string) (*domain.InvoiceRecord, error) {
	inv, err := buildInvoice(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load invoice for replace", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	party, err := lookupParty(ctx, s.partyRepo, inv.Type.PartyKind(), inv.PartyID())
	if err != nil {
		return nil, err
	}

	inv.InvoiceID = existing.InvoiceID
	inv.AuditFields = existing.AuditFields
	inv.LastUpdatedAt = time.Now().UTC()
	inv.LastUpdatedBy = requestingUserID
	assignLineItemIDs(&inv)

	if err := s.invoiceRepo.ReplaceInvoice(ctx, inv, inv.Items); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to replace invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice replaced", slog.String("invoice_id", inv.InvoiceID), slog.Int("items", len(inv.Items)))
	return &domain.InvoiceRecord{Invoice: inv, PartyName: party.Name}, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.InvoiceRecord, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	rec := &domain.InvoiceRecord{Invoice: *inv}
	party, err := s.partyRepo.FindPartyByID(ctx, inv.Type.PartyKind(), inv.PartyID())
	switch {
	case err == nil:
		rec.PartyName = party.Name
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, "Invoice references a missing party", slog.String("invoice_id", invoiceID))
	default:
		return nil, err
	}
	return rec, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		}
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}
