package services

// ServiceContainer holds instances of all the application services.
// Handlers reach every operation through it.
type ServiceContainer struct {
	Flight      FlightSvcFacade
	Transfer    TransferSvcFacade
	Translation TranslationSvcFacade
	Catalog     CatalogSvc
	Ledger      LedgerSvc
	Document    DocumentSvc
	Portal      PortalSvc
}
