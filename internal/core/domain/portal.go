package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortalItem is a transaction of any kind reduced to what a client sees.
type PortalItem struct {
	ID          string
	Kind        ServiceKind
	Description string
	Status      Status
	TotalInEUR  decimal.Decimal
	OnAccount   decimal.Decimal
	Balance     decimal.Decimal
	Payments    []PaymentEntry
	CreatedAt   time.Time
}

// PortalOverview is everything a client can see about their own account.
type PortalOverview struct {
	ClientID    string
	Items       []PortalItem
	Outstanding decimal.Decimal
}
