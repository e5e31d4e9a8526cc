package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFlightRepository struct {
	BaseRepository
}

// newPgxFlightRepository creates a new repository for flight data.
func newPgxFlightRepository(pool *pgxpool.Pool) *PgxFlightRepository {
	return &PgxFlightRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FlightRepositoryFacade = (*PgxFlightRepository)(nil)

const flightSelect = `
	SELECT f.flight_id, f.client_id, f.agent_id, f.pnr, f.itinerary_id, f.airline,
	       f.departure_date, f.return_date, f.passengers, f.notes,
	       f.cost, f.sold_price, f.fee_agv, f.on_account, f.balance,
	       f.payment_details, f.documents, f.status,
	       f.created_at, f.created_by, f.last_updated_at, f.last_updated_by,
	       c.id, c.full_name, c.email, c.phone, c.document_number,
	       a.id, a.full_name, a.email, a.phone, a.document_number
	FROM flights f
	LEFT JOIN profiles c ON c.id = f.client_id
	LEFT JOIN profiles a ON a.id = f.agent_id
`

func scanFlight(row pgx.Row) (models.Flight, error) {
	var m models.Flight
	err := row.Scan(
		&m.FlightID, &m.ClientID, &m.AgentID, &m.PNR, &m.ItineraryID, &m.Airline,
		&m.DepartureDate, &m.ReturnDate, &m.Passengers, &m.Notes,
		&m.Cost, &m.SoldPrice, &m.FeeAGV, &m.OnAccount, &m.Balance,
		&m.PaymentDetails, &m.Documents, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.Client.ID, &m.Client.FullName, &m.Client.Email, &m.Client.Phone, &m.Client.DocumentNumber,
		&m.Agent.ID, &m.Agent.FullName, &m.Agent.Email, &m.Agent.Phone, &m.Agent.DocumentNumber,
	)
	return m, err
}

// SaveFlight inserts a new flight.
func (r *PgxFlightRepository) SaveFlight(ctx context.Context, flight domain.Flight) error {
	m := mapping.ToModelFlight(flight)
	query := `
		INSERT INTO flights (flight_id, client_id, agent_id, pnr, itinerary_id, airline,
			departure_date, return_date, passengers, notes,
			cost, sold_price, fee_agv, on_account, balance,
			payment_details, documents, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FlightID, m.ClientID, m.AgentID, m.PNR, m.ItineraryID, m.Airline,
		m.DepartureDate, m.ReturnDate, m.Passengers, m.Notes,
		m.Cost, m.SoldPrice, m.FeeAGV, m.OnAccount, m.Balance,
		m.PaymentDetails, m.Documents, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save flight "+m.FlightID)
	}
	return nil
}

// UpdateFlight overwrites every mutable column of a flight.
func (r *PgxFlightRepository) UpdateFlight(ctx context.Context, flight domain.Flight) error {
	m := mapping.ToModelFlight(flight)
	query := `
		UPDATE flights SET
			client_id = $2, agent_id = $3, pnr = $4, itinerary_id = $5, airline = $6,
			departure_date = $7, return_date = $8, passengers = $9, notes = $10,
			cost = $11, sold_price = $12, fee_agv = $13, on_account = $14, balance = $15,
			payment_details = $16, documents = $17, status = $18,
			last_updated_at = $19, last_updated_by = $20
		WHERE flight_id = $1;
	`
	return r.execOne(ctx, "update flight", m.FlightID, query,
		m.FlightID, m.ClientID, m.AgentID, m.PNR, m.ItineraryID, m.Airline,
		m.DepartureDate, m.ReturnDate, m.Passengers, m.Notes,
		m.Cost, m.SoldPrice, m.FeeAGV, m.OnAccount, m.Balance,
		m.PaymentDetails, m.Documents, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// DeleteFlight removes a flight.
func (r *PgxFlightRepository) DeleteFlight(ctx context.Context, flightID string) error {
	return r.execOne(ctx, "delete flight", flightID, `DELETE FROM flights WHERE flight_id = $1;`, flightID)
}

// FindFlightByID retrieves a flight with its joined profiles.
func (r *PgxFlightRepository) FindFlightByID(ctx context.Context, flightID string) (*domain.Flight, error) {
	m, err := scanFlight(r.Pool.QueryRow(ctx, flightSelect+" WHERE f.flight_id = $1;", flightID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("flight " + flightID + " not found")
		}
		return nil, fmt.Errorf("failed to find flight %s: %w", flightID, err)
	}
	flight := mapping.ToDomainFlight(m)
	return &flight, nil
}

// ListFlights retrieves a page of flights ordered by (created_at, flight_id) DESC.
func (r *PgxFlightRepository) ListFlights(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.Flight, *string, error) {
	limit = limitOf(limit)

	var conds conditions
	if filter.Status != "" {
		conds.add("f.status = $%d", string(filter.Status))
	}
	if filter.ClientID != "" {
		conds.add("f.client_id = $%d", filter.ClientID)
	}
	if err := conds.addCursor("f.created_at", "f.flight_id", nextToken); err != nil {
		return nil, nil, err
	}
	conds.args = append(conds.args, limit+1)
	query := fmt.Sprintf("%s %s ORDER BY f.created_at DESC, f.flight_id DESC LIMIT $%d;", flightSelect, conds.where(), len(conds.args))

	rows, err := r.Pool.Query(ctx, query, conds.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query flights: %w", err)
	}
	modelFlights, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Flight, error) {
		return scanFlight(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan flights: %w", err)
	}

	page, token := pageToken(modelFlights, limit, func(m models.Flight) (time.Time, string) {
		return m.CreatedAt, m.FlightID
	})
	return mapping.ToDomainFlightSlice(page), token, nil
}

// ListFlightsByClient retrieves every flight of a client, newest first.
func (r *PgxFlightRepository) ListFlightsByClient(ctx context.Context, clientID string) ([]domain.Flight, error) {
	rows, err := r.Pool.Query(ctx, flightSelect+" WHERE f.client_id = $1 ORDER BY f.created_at DESC;", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights of client %s: %w", clientID, err)
	}
	modelFlights, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Flight, error) {
		return scanFlight(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan flights of client %s: %w", clientID, err)
	}
	return mapping.ToDomainFlightSlice(modelFlights), nil
}
