package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// FlightReaderSvc defines read operations for flights
type FlightReaderSvc interface {
	ListFlights(ctx context.Context, params dto.ListParams) (*dto.ListFlightsResponse, error)
	GetFlight(ctx context.Context, flightID string) (*domain.Flight, error)
}

// FlightWriterSvc defines write operations for flights. Ledger figures are
// always recomputed from the submitted cost, sold price and payments.
type FlightWriterSvc interface {
	CreateFlight(ctx context.Context, req dto.FlightRequest, uploads []dto.Upload, userID string) (*domain.Flight, error)
	UpdateFlight(ctx context.Context, flightID string, req dto.FlightRequest, uploads []dto.Upload, userID string) (*domain.Flight, error)
	UpdateFlightStatus(ctx context.Context, flightID string, status domain.Status, userID string) (*domain.Flight, error)
	DeleteFlight(ctx context.Context, flightID string) error
}

// FlightPaymentSvc edits single committed payments of a flight.
type FlightPaymentSvc interface {
	// UpdateFlightPayment replaces the payment at index. A nil proof keeps the stored proof.
	UpdateFlightPayment(ctx context.Context, flightID string, index int, req dto.PaymentRequest, proof *dto.Upload, userID string) (*domain.Flight, error)
	DeleteFlightPayment(ctx context.Context, flightID string, index int, userID string) (*domain.Flight, error)
}

// FlightSvcFacade combines all flight-related service interfaces
type FlightSvcFacade interface {
	FlightReaderSvc
	FlightWriterSvc
	FlightPaymentSvc
}
