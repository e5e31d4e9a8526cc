package repositories

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// FlightReader defines read operations for flight data
type FlightReader interface {
	// FindFlightByID retrieves a flight with its client and agent profiles.
	FindFlightByID(ctx context.Context, flightID string) (*domain.Flight, error)

	// ListFlights retrieves a page of flights, newest first, and the token of the next page.
	ListFlights(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.Flight, *string, error)

	// ListFlightsByClient retrieves every flight of a client.
	ListFlightsByClient(ctx context.Context, clientID string) ([]domain.Flight, error)
}

// FlightWriter defines write operations for flight data
type FlightWriter interface {
	SaveFlight(ctx context.Context, flight domain.Flight) error
	UpdateFlight(ctx context.Context, flight domain.Flight) error
	DeleteFlight(ctx context.Context, flightID string) error
}

// FlightRepositoryFacade combines all flight-related repository interfaces
type FlightRepositoryFacade interface {
	FlightReader
	FlightWriter
}
