package services

import (
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, storage portsrepo.DocumentStorage, signer portsrepo.DocumentURLSigner) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Documents first; every transaction service stores its uploads through it.
	container.Document = NewDocumentService(storage, signer, cfg.PublicBaseURL)

	container.Flight = NewFlightService(repos.FlightRepo, container.Document)
	container.Transfer = NewTransferService(repos.TransferRepo, container.Document)
	container.Translation = NewTranslationService(repos.TranslationRepo, container.Document)
	container.Catalog = NewCatalogService(repos.CatalogRepo)
	container.Ledger = NewLedgerService()
	container.Portal = NewPortalService(repos.FlightRepo, repos.TransferRepo, repos.TranslationRepo)

	return container
}
