package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for dropdown data.
func newPgxCatalogRepository(pool *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CatalogReader = (*PgxCatalogRepository)(nil)

// ListClients retrieves client profiles ordered by name.
func (r *PgxCatalogRepository) ListClients(ctx context.Context) ([]domain.ClientOption, error) {
	query := `
		SELECT id, full_name, COALESCE(document_number, ''), COALESCE(email, '')
		FROM profiles
		WHERE role = 'client'
		ORDER BY full_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClientOption, error) {
		var c domain.ClientOption
		err := row.Scan(&c.ID, &c.FullName, &c.DocumentNumber, &c.Email)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return clients, nil
}

// ListPaymentMethods retrieves the active payment methods of a country.
func (r *PgxCatalogRepository) ListPaymentMethods(ctx context.Context, country domain.Country) ([]domain.PaymentMethod, error) {
	query := `
		SELECT id, name, country, is_active
		FROM payment_methods
		WHERE country = $1 AND is_active
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, string(country))
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods for %s: %w", country, err)
	}
	methods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentMethod, error) {
		var m domain.PaymentMethod
		var c string
		err := row.Scan(&m.ID, &m.Name, &c, &m.IsActive)
		m.Country = domain.Country(c)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment methods: %w", err)
	}
	return methods, nil
}

// ListItineraries retrieves all saved itineraries.
func (r *PgxCatalogRepository) ListItineraries(ctx context.Context) ([]domain.Itinerary, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, origin, destination FROM itineraries ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}
	itineraries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Itinerary, error) {
		var it domain.Itinerary
		err := row.Scan(&it.ID, &it.Name, &it.Origin, &it.Destination)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan itineraries: %w", err)
	}
	return itineraries, nil
}

// ListActivePermissions retrieves active permission types.
func (r *PgxCatalogRepository) ListActivePermissions(ctx context.Context) ([]domain.Permission, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, is_active FROM permissions WHERE is_active ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	permissions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Permission, error) {
		var p domain.Permission
		err := row.Scan(&p.ID, &p.Name, &p.IsActive)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan permissions: %w", err)
	}
	return permissions, nil
}

// ListActivePermissionDetails retrieves active permission types with their requirements and price.
func (r *PgxCatalogRepository) ListActivePermissionDetails(ctx context.Context) ([]domain.PermissionDetail, error) {
	query := `
		SELECT id, name, is_active, COALESCE(description, ''), COALESCE(requirements, '{}'), price
		FROM permissions
		WHERE is_active
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query permission details: %w", err)
	}
	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PermissionDetail, error) {
		var d domain.PermissionDetail
		err := row.Scan(&d.ID, &d.Name, &d.IsActive, &d.Description, &d.Requirements, &d.Price)
		if d.Requirements == nil {
			d.Requirements = []string{}
		}
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan permission details: %w", err)
	}
	return details, nil
}
