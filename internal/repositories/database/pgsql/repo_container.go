package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:   newPgxPartyRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		ReceiptRepo: newPgxReceiptRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
