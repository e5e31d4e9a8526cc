package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// PortalItem is one transaction as shown to the client it belongs to.
type PortalItem struct {
	ID          string             `json:"id"`
	Kind        domain.ServiceKind `json:"kind"`
	Description string             `json:"description"`
	Status      domain.Status      `json:"status"`
	TotalInEUR  string             `json:"total_in_eur"`
	OnAccount   string             `json:"on_account"`
	Balance     string             `json:"balance"`
	Payments    []PaymentResponse  `json:"payment_details"`
	CreatedAt   time.Time          `json:"created_at"`
}

// PortalOverviewResponse lists a client's transactions and what they still owe.
type PortalOverviewResponse struct {
	ClientID    string       `json:"client_id"`
	Items       []PortalItem `json:"items"`
	Outstanding string       `json:"outstanding_balance"`
}

// ToPortalOverviewResponse converts a domain overview.
func ToPortalOverviewResponse(o *domain.PortalOverview) PortalOverviewResponse {
	items := make([]PortalItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = PortalItem{
			ID:          it.ID,
			Kind:        it.Kind,
			Description: it.Description,
			Status:      it.Status,
			TotalInEUR:  accounting.Format(it.TotalInEUR),
			OnAccount:   accounting.Format(it.OnAccount),
			Balance:     accounting.Format(it.Balance),
			Payments:    ToPaymentResponses(it.Payments),
			CreatedAt:   it.CreatedAt,
		}
	}
	return PortalOverviewResponse{
		ClientID:    o.ClientID,
		Items:       items,
		Outstanding: accounting.Format(o.Outstanding),
	}
}
