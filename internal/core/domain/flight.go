package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flight is a ticket sold to a client. Cost is the agency's cost basis and
// SoldPrice the amount charged, both in EUR.
type Flight struct {
	FlightID      string          `json:"flight_id"`
	ClientID      string          `json:"client_id"`
	Client        *Profile        `json:"client,omitempty"`
	AgentID       string          `json:"agent_id"`
	Agent         *Profile        `json:"agent,omitempty"`
	PNR           string          `json:"pnr"`
	ItineraryID   *string         `json:"itinerary_id,omitempty"`
	Airline       string          `json:"airline"`
	DepartureDate *time.Time      `json:"departure_date,omitempty"`
	ReturnDate    *time.Time      `json:"return_date,omitempty"`
	Passengers    int             `json:"passengers"`
	Notes         string          `json:"notes"`
	Cost          decimal.Decimal `json:"cost"`
	SoldPrice     decimal.Decimal `json:"sold_price"`
	Fee           decimal.Decimal `json:"fee_agv"`
	OnAccount     decimal.Decimal `json:"on_account"`
	Balance       decimal.Decimal `json:"balance"`
	Payments      []PaymentEntry  `json:"payment_details"`
	Documents     []Document      `json:"documents"`
	Status        Status          `json:"status"`
	AuditFields
}

// LedgerBasis returns the flat EUR basis of the flight.
func (f Flight) LedgerBasis() LedgerBasis {
	return LedgerBasis{Total: f.SoldPrice}
}
