package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	FlightRepo      FlightRepositoryFacade
	TransferRepo    TransferRepositoryFacade
	TranslationRepo TranslationRepositoryFacade
	CatalogRepo     CatalogReader
}
