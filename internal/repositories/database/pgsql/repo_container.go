package pgsql

import (
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. The catalog reader
// can be wrapped by a cache afterwards.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FlightRepo:      newPgxFlightRepository(dbPool),
		TransferRepo:    newPgxTransferRepository(dbPool),
		TranslationRepo: newPgxTranslationRepository(dbPool),
		CatalogRepo:     newPgxCatalogRepository(dbPool),
	}
}
