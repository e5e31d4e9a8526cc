package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// FlightRequest is the body of a flight create or update submission.
// Client supplied ledger totals are ignored; they are recomputed.
type FlightRequest struct {
	ClientID      string            `json:"client_id" binding:"required"`
	AgentID       string            `json:"agent_id"`
	PNR           string            `json:"pnr" binding:"max=20"`
	ItineraryID   *string           `json:"itinerary_id"`
	Airline       string            `json:"airline"`
	DepartureDate *time.Time        `json:"departure_date"`
	ReturnDate    *time.Time        `json:"return_date"`
	Passengers    int               `json:"passengers" binding:"min=0"`
	Notes         string            `json:"notes"`
	Cost          Amount            `json:"cost"`
	SoldPrice     Amount            `json:"sold_price"`
	Payments      []PaymentRequest  `json:"payment_details" binding:"dive"`
	Documents     []domain.Document `json:"documents"`
	Status        domain.Status     `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
}

// FlightResponse is the API view of a flight.
type FlightResponse struct {
	FlightID      string            `json:"flight_id"`
	ClientID      string            `json:"client_id"`
	Client        *domain.Profile   `json:"client,omitempty"`
	AgentID       string            `json:"agent_id"`
	Agent         *domain.Profile   `json:"agent,omitempty"`
	PNR           string            `json:"pnr"`
	ItineraryID   *string           `json:"itinerary_id,omitempty"`
	Airline       string            `json:"airline"`
	DepartureDate *time.Time        `json:"departure_date,omitempty"`
	ReturnDate    *time.Time        `json:"return_date,omitempty"`
	Passengers    int               `json:"passengers"`
	Notes         string            `json:"notes"`
	Cost          string            `json:"cost"`
	SoldPrice     string            `json:"sold_price"`
	Fee           string            `json:"fee_agv"`
	OnAccount     string            `json:"on_account"`
	Balance       string            `json:"balance"`
	Payments      []PaymentResponse `json:"payment_details"`
	Documents     []domain.Document `json:"documents"`
	Status        domain.Status     `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	CreatedBy     string            `json:"created_by"`
	LastUpdatedAt time.Time         `json:"last_updated_at"`
}

// ListFlightsResponse is a page of flights.
type ListFlightsResponse struct {
	Flights   []FlightResponse `json:"flights"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToFlightResponse converts a domain flight.
func ToFlightResponse(f *domain.Flight) FlightResponse {
	documents := f.Documents
	if documents == nil {
		documents = []domain.Document{}
	}
	return FlightResponse{
		FlightID:      f.FlightID,
		ClientID:      f.ClientID,
		Client:        f.Client,
		AgentID:       f.AgentID,
		Agent:         f.Agent,
		PNR:           f.PNR,
		ItineraryID:   f.ItineraryID,
		Airline:       f.Airline,
		DepartureDate: f.DepartureDate,
		ReturnDate:    f.ReturnDate,
		Passengers:    f.Passengers,
		Notes:         f.Notes,
		Cost:          accounting.Format(f.Cost),
		SoldPrice:     accounting.Format(f.SoldPrice),
		Fee:           accounting.Format(f.Fee),
		OnAccount:     accounting.Format(f.OnAccount),
		Balance:       accounting.Format(f.Balance),
		Payments:      ToPaymentResponses(f.Payments),
		Documents:     documents,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
		CreatedBy:     f.CreatedBy,
		LastUpdatedAt: f.LastUpdatedAt,
	}
}

// ToFlightResponses converts a slice of flights.
func ToFlightResponses(flights []domain.Flight) []FlightResponse {
	responses := make([]FlightResponse, len(flights))
	for i := range flights {
		responses[i] = ToFlightResponse(&flights[i])
	}
	return responses
}
