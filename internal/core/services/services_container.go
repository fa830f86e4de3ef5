package services

import (
	portsrepo "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/repositories"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo)
	container.Balance = NewBalanceService(repos.PartyRepo, repos.InvoiceRepo, repos.ReceiptRepo)
	container.Search = NewSearchService(container.Party, repos.PartyRepo, repos.InvoiceRepo, repos.ReceiptRepo, container.Balance)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PartyRepo)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, repos.InvoiceRepo, repos.PartyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
	_ portssvc.SearchSvc      = (*searchService)(nil)
)
