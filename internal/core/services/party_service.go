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
	"golang.org/x/text/cases"
)

type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates the client/supplier service, which also resolves names.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func validateKind(kind domain.PartyKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: tipo de entidad desconocido %q", apperrors.ErrValidation, string(kind))
	}
	return nil
}

func (s *partyService) GetParty(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	party, err := s.partyRepo.FindPartyByID(ctx, kind, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get party", slog.String("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	parties, err := s.partyRepo.ListParties(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties", slog.String("kind", string(kind)))
		return nil, err
	}
	return parties, nil
}

// ResolveByName performs the case-insensitive substring lookup.
func (s *partyService) ResolveByName(ctx context.Context, kind domain.PartyKind, fragment string) ([]domain.Party, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, fmt.Errorf("%w: el nombre a buscar no puede estar vacío", apperrors.ErrValidation)
	}

	parties, err := s.partyRepo.FindPartiesByNameFragment(ctx, kind, fragment)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve parties by name", slog.String("fragment", fragment))
		return nil, err
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}

// ResolveSingle narrows a fragment to one party. An exact case-folded name
// match beats substring matches; otherwise the substring match must be unique.
func (s *partyService) ResolveSingle(ctx context.Context, kind domain.PartyKind, fragment string) (*domain.Party, error) {
	matches, err := s.ResolveByName(ctx, kind, fragment)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: ningún %s coincide con %q", apperrors.ErrNotFound, kind, fragment)
	}

	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(fragment))
	var exact []domain.Party
	for _, p := range matches {
		if fold.String(strings.TrimSpace(p.Name)) == want {
			exact = append(exact, p)
		}
	}

	switch {
	case len(exact) == 1:
		return &exact[0], nil
	case len(exact) > 1:
		return nil, ambiguousMatch(kind, fragment, exact)
	case len(matches) == 1:
		return &matches[0], nil
	default:
		return nil, ambiguousMatch(kind, fragment, matches)
	}
}

func ambiguousMatch(kind domain.PartyKind, fragment string, candidates []domain.Party) error {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return fmt.Errorf("%w: %q coincide con %d %s (%s); indique un nombre más preciso",
		apperrors.ErrValidation, fragment, len(candidates), kind, strings.Join(names, ", "))
}

func (s *partyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.PartyRequest, creatorUserID string) (*domain.Party, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartyID: uuid.NewString(),
		Kind:    kind,
		Name:    name,
		Address: strings.TrimSpace(req.Address),
		TaxID:   normalizeTaxID(req.TaxID),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save party", slog.String("kind", string(kind)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(kind)))
	return &party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, kind domain.PartyKind, partyID string, req dto.PartyRequest, requestingUserID string) (*domain.Party, error) {
	party, err := s.GetParty(ctx, kind, partyID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", apperrors.ErrValidation)
	}

	party.Name = name
	party.Address = strings.TrimSpace(req.Address)
	party.TaxID = normalizeTaxID(req.TaxID)
	party.Email = strings.TrimSpace(req.Email)
	party.Phone = strings.TrimSpace(req.Phone)
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = requestingUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	if err := s.partyRepo.DeleteParty(ctx, kind, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		}
		return err
	}
	s.LogInfo(ctx, "Party deleted", slog.String("party_id", partyID), slog.String("kind", string(kind)))
	return nil
}

func normalizeTaxID(taxID *string) *string {
	if taxID == nil {
		return nil
	}
	v := strings.TrimSpace(*taxID)
	if v == "" {
		return nil
	}
	return &v
}
