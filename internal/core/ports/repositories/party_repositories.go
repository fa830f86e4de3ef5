package repositories

import (
	"context"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
)

// PartyReader defines read operations for clients and suppliers.
type PartyReader interface {
	// FindPartyByID retrieves a single party of the given kind.
	FindPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error)

	// ListParties returns every party of the given kind ordered by name.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)

	// FindPartiesByNameFragment performs a case-insensitive substring match on
	// party names. No match is an empty slice, not an error.
	FindPartiesByNameFragment(ctx context.Context, kind domain.PartyKind, fragment string) ([]domain.Party, error)
}

// PartyWriter defines write operations for clients and suppliers.
type PartyWriter interface {
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error
	DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
