package domain

import "github.com/shopspring/decimal"

// Country identifies the branch network a payment method belongs to.
type Country string

const (
	CountryIT Country = "IT"
	CountryPE Country = "PE"
)

// ClientOption is a client row as shown in the client dropdown.
type ClientOption struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	DocumentNumber string `json:"document_number,omitempty"`
	Email          string `json:"email,omitempty"`
}

// PaymentMethod is a way of paying accepted at the branches of one country.
type PaymentMethod struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Country  Country `json:"country"`
	IsActive bool    `json:"is_active"`
}

// Itinerary is a saved route used to prefill flights.
type Itinerary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Permission is a travel/residence permit type offered to clients.
type Permission struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// PermissionDetail extends Permission with its requirements and price.
type PermissionDetail struct {
	Permission
	Description  string          `json:"description"`
	Requirements []string        `json:"requirements"`
	Price        decimal.Decimal `json:"price"`
}
