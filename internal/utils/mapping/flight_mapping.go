package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
)

// ToModelFlight converts a domain Flight to a model Flight
func ToModelFlight(d domain.Flight) models.Flight {
	return models.Flight{
		FlightID:       d.FlightID,
		ClientID:       d.ClientID,
		AgentID:        nullable(d.AgentID),
		PNR:            d.PNR,
		ItineraryID:    d.ItineraryID,
		Airline:        d.Airline,
		DepartureDate:  d.DepartureDate,
		ReturnDate:     d.ReturnDate,
		Passengers:     d.Passengers,
		Notes:          d.Notes,
		Cost:           d.Cost,
		SoldPrice:      d.SoldPrice,
		FeeAGV:         d.Fee,
		OnAccount:      d.OnAccount,
		Balance:        d.Balance,
		PaymentDetails: ToModelPaymentDetails(d.Payments),
		Documents:      ToModelDocuments(d.Documents),
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFlight converts a model Flight to a domain Flight
func ToDomainFlight(m models.Flight) domain.Flight {
	return domain.Flight{
		FlightID:      m.FlightID,
		ClientID:      m.ClientID,
		Client:        ToDomainProfile(m.Client),
		AgentID:       deref(m.AgentID),
		Agent:         ToDomainProfile(m.Agent),
		PNR:           m.PNR,
		ItineraryID:   m.ItineraryID,
		Airline:       m.Airline,
		DepartureDate: m.DepartureDate,
		ReturnDate:    m.ReturnDate,
		Passengers:    m.Passengers,
		Notes:         m.Notes,
		Cost:          m.Cost,
		SoldPrice:     m.SoldPrice,
		Fee:           m.FeeAGV,
		OnAccount:     m.OnAccount,
		Balance:       m.Balance,
		Payments:      ToDomainPaymentEntries(m.PaymentDetails),
		Documents:     ToDomainDocuments(m.Documents),
		Status:        domain.Status(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFlightSlice converts a slice of model Flights to domain Flights
func ToDomainFlightSlice(ms []models.Flight) []domain.Flight {
	ds := make([]domain.Flight, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFlight(m)
	}
	return ds
}
