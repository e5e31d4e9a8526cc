package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flight is a row of the flights table.
type Flight struct {
	FlightID       string
	ClientID       string
	AgentID        *string
	PNR            string
	ItineraryID    *string
	Airline        string
	DepartureDate  *time.Time
	ReturnDate     *time.Time
	Passengers     int
	Notes          string
	Cost           decimal.Decimal
	SoldPrice      decimal.Decimal
	FeeAGV         decimal.Decimal
	OnAccount      decimal.Decimal
	Balance        decimal.Decimal
	PaymentDetails []PaymentDetail
	Documents      []Document
	Status         string
	Client         ProfileRef
	Agent          ProfileRef
	AuditFields
}
