package services

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
)

// PartyReaderSvc defines read operations for clients and suppliers
type PartyReaderSvc interface {
	GetParty(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyResolverSvc maps free-text name fragments to parties.
type PartyResolverSvc interface {
	// ResolveByName returns every party whose name contains the fragment,
	// case-insensitively. Zero matches is an empty slice, never an error.
	ResolveByName(ctx context.Context, kind domain.PartyKind, fragment string) ([]domain.Party, error)

	// ResolveSingle picks exactly one party: a case-insensitive exact name
	// match wins, otherwise the only substring match. No match is ErrNotFound
	// and several candidates are ErrValidation.
	ResolveSingle(ctx context.Context, kind domain.PartyKind, fragment string) (*domain.Party, error)
}

// PartyWriterSvc defines write operations for clients and suppliers
type PartyWriterSvc interface {
	CreateParty(ctx context.Context, kind domain.PartyKind, req dto.PartyRequest, creatorUserID string) (*domain.Party, error)
	UpdateParty(ctx context.Context, kind domain.PartyKind, partyID string, req dto.PartyRequest, requestingUserID string) (*domain.Party, error)
	DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyResolverSvc
	PartyWriterSvc
}
