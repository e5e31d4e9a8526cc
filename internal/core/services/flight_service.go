package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// flightService manages flight bookings and their payments.
type flightService struct {
	BaseService
	flightRepo  portsrepo.FlightRepositoryFacade
	documentSvc portssvc.DocumentSvc
}

// NewFlightService creates a new FlightService.
func NewFlightService(flightRepo portsrepo.FlightRepositoryFacade, documentSvc portssvc.DocumentSvc) portssvc.FlightSvcFacade {
	return &flightService{
		BaseService: newBaseService(),
		flightRepo:  flightRepo,
		documentSvc: documentSvc,
	}
}

var _ portssvc.FlightSvcFacade = (*flightService)(nil)

// applyFlightLedger recomputes every derived money field of f.
func applyFlightLedger(f *domain.Flight) {
	f.Cost = accounting.Round(f.Cost)
	f.SoldPrice = accounting.Round(f.SoldPrice)
	f.Fee = accounting.Margin(f.Cost, f.SoldPrice)
	summary := accounting.Summarize(accounting.FlatPolicy{}, f.LedgerBasis(), f.Payments, nil)
	f.OnAccount = summary.OnAccount
	f.Balance = summary.Balance
}

func (s *flightService) ListFlights(ctx context.Context, params dto.ListParams) (*dto.ListFlightsResponse, error) {
	flights, nextToken, err := s.flightRepo.ListFlights(ctx, filterFromParams(params), limitOrDefault(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list flights from repository")
		return nil, fmt.Errorf("failed to retrieve flights: %w", err)
	}
	return &dto.ListFlightsResponse{
		Flights:   dto.ToFlightResponses(flights),
		NextToken: nextToken,
	}, nil
}

func (s *flightService) GetFlight(ctx context.Context, flightID string) (*domain.Flight, error) {
	flight, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %s: %w", flightID, err)
	}
	return flight, nil
}

func (s *flightService) CreateFlight(ctx context.Context, req dto.FlightRequest, uploads []dto.Upload, userID string) (*domain.Flight, error) {
	now := s.Now()
	flightID := uuid.NewString()

	if err := checkProofIndexes(uploads, len(req.Payments)); err != nil {
		return nil, err
	}
	stored, err := s.documentSvc.StoreUploads(ctx, domain.KindFlight, flightID, uploads)
	if err != nil {
		s.LogError(ctx, err, "Failed to store flight uploads", slog.String("flight_id", flightID))
		return nil, fmt.Errorf("failed to store flight files: %w", err)
	}

	flight := domain.Flight{
		FlightID:    flightID,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	s.fillFlight(&flight, req, stored)

	if err := s.flightRepo.SaveFlight(ctx, flight); err != nil {
		s.LogError(ctx, err, "Failed to save flight", slog.String("flight_id", flightID))
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.LogInfo(ctx, "Flight created", slog.String("flight_id", flightID), slog.String("balance", accounting.Format(flight.Balance)))
	return &flight, nil
}

func (s *flightService) UpdateFlight(ctx context.Context, flightID string, req dto.FlightRequest, uploads []dto.Upload, userID string) (*domain.Flight, error) {
	flight, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %s: %w", flightID, err)
	}

	if err := checkProofIndexes(uploads, len(req.Payments)); err != nil {
		return nil, err
	}
	stored, err := s.documentSvc.StoreUploads(ctx, domain.KindFlight, flightID, uploads)
	if err != nil {
		s.LogError(ctx, err, "Failed to store flight uploads", slog.String("flight_id", flightID))
		return nil, fmt.Errorf("failed to store flight files: %w", err)
	}

	s.fillFlight(flight, req, stored)
	flight.LastUpdatedAt = s.Now()
	flight.LastUpdatedBy = userID

	if err := s.flightRepo.UpdateFlight(ctx, *flight); err != nil {
		s.LogError(ctx, err, "Failed to update flight", slog.String("flight_id", flightID))
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}
	return flight, nil
}

func (s *flightService) fillFlight(f *domain.Flight, req dto.FlightRequest, stored *dto.StoredUploads) {
	f.ClientID = req.ClientID
	f.AgentID = req.AgentID
	f.PNR = req.PNR
	f.ItineraryID = req.ItineraryID
	f.Airline = req.Airline
	f.DepartureDate = req.DepartureDate
	f.ReturnDate = req.ReturnDate
	f.Passengers = req.Passengers
	f.Notes = req.Notes
	f.Cost = req.Cost.Dec()
	f.SoldPrice = req.SoldPrice.Dec()
	f.Payments = buildPayments(req.Payments, proofsOf(stored), s.Now())
	f.Documents = mergeDocuments(req.Documents, stored)
	f.Status = statusOrPending(req.Status)
	applyFlightLedger(f)
}

func (s *flightService) UpdateFlightStatus(ctx context.Context, flightID string, status domain.Status, userID string) (*domain.Flight, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", status))
	}
	flight, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %s: %w", flightID, err)
	}
	flight.Status = status
	flight.LastUpdatedAt = s.Now()
	flight.LastUpdatedBy = userID
	if err := s.flightRepo.UpdateFlight(ctx, *flight); err != nil {
		s.LogError(ctx, err, "Failed to update flight status", slog.String("flight_id", flightID))
		return nil, fmt.Errorf("failed to update flight status: %w", err)
	}
	return flight, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	if err := s.flightRepo.DeleteFlight(ctx, flightID); err != nil {
		return fmt.Errorf("failed to delete flight %s: %w", flightID, err)
	}
	s.LogInfo(ctx, "Flight deleted", slog.String("flight_id", flightID))
	return nil
}

func (s *flightService) UpdateFlightPayment(ctx context.Context, flightID string, index int, req dto.PaymentRequest, proof *dto.Upload, userID string) (*domain.Flight, error) {
	flight, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %s: %w", flightID, err)
	}

	session := accounting.NewPaymentSession(flight.Payments)
	if err := session.BeginEdit(index); err != nil {
		return nil, err
	}
	previousProof := flight.Payments[index].ProofPath

	fields := req.ToInput()
	if proof != nil {
		path, err := s.documentSvc.StoreProof(ctx, domain.KindFlight, flightID, *proof)
		if err != nil {
			s.LogError(ctx, err, "Failed to store payment proof", slog.String("flight_id", flightID))
			return nil, fmt.Errorf("failed to store payment proof: %w", err)
		}
		fields.ProofPath = path
	}
	if err := session.UpdateEdit(fields); err != nil {
		return nil, err
	}
	saved, err := session.SaveEdit()
	if err != nil {
		return nil, err
	}

	updated, err := s.savePayments(ctx, flight, session, userID)
	if err != nil {
		return nil, err
	}
	if proof != nil && previousProof != saved.ProofPath {
		s.removeProof(ctx, flightID, previousProof)
	}
	return updated, nil
}

func (s *flightService) DeleteFlightPayment(ctx context.Context, flightID string, index int, userID string) (*domain.Flight, error) {
	flight, err := s.flightRepo.FindFlightByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %s: %w", flightID, err)
	}

	session := accounting.NewPaymentSession(flight.Payments)
	removed, err := session.Delete(index)
	if err != nil {
		return nil, err
	}

	updated, err := s.savePayments(ctx, flight, session, userID)
	if err != nil {
		return nil, err
	}
	s.removeProof(ctx, flightID, removed.ProofPath)
	return updated, nil
}

// removeProof deletes a proof no payment references any more. The flight is
// already saved, so a failure is only logged.
func (s *flightService) removeProof(ctx context.Context, flightID, proofPath string) {
	if proofPath == "" {
		return
	}
	if err := s.documentSvc.RemoveProof(ctx, proofPath); err != nil {
		s.LogError(ctx, err, "Failed to remove payment proof", slog.String("flight_id", flightID), slog.String("path", proofPath))
	}
}

func (s *flightService) savePayments(ctx context.Context, flight *domain.Flight, session *accounting.PaymentSession, userID string) (*domain.Flight, error) {
	flight.Payments = session.Payments()
	applyFlightLedger(flight)
	flight.LastUpdatedAt = s.Now()
	flight.LastUpdatedBy = userID

	if err := s.flightRepo.UpdateFlight(ctx, *flight); err != nil {
		s.LogError(ctx, err, "Failed to save flight payments", slog.String("flight_id", flight.FlightID))
		return nil, fmt.Errorf("failed to save flight payments: %w", err)
	}
	s.LogInfo(ctx, "Flight payments saved",
		slog.String("flight_id", flight.FlightID),
		slog.Int("payments", len(flight.Payments)),
		slog.String("on_account", accounting.Format(flight.OnAccount)))
	return flight, nil
}
