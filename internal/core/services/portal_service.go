package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// portalService builds the read-only view a client has of their account.
type portalService struct {
	BaseService
	flightRepo      portsrepo.FlightReader
	transferRepo    portsrepo.TransferReader
	translationRepo portsrepo.TranslationReader
}

// NewPortalService creates a new PortalService.
func NewPortalService(flightRepo portsrepo.FlightReader, transferRepo portsrepo.TransferReader, translationRepo portsrepo.TranslationReader) portssvc.PortalSvc {
	return &portalService{
		BaseService:     newBaseService(),
		flightRepo:      flightRepo,
		transferRepo:    transferRepo,
		translationRepo: translationRepo,
	}
}

var _ portssvc.PortalSvc = (*portalService)(nil)

func portalItem(id string, kind domain.ServiceKind, description string, status domain.Status, basis domain.LedgerBasis, payments []domain.PaymentEntry, createdAt time.Time) domain.PortalItem {
	summary := accounting.Summarize(accounting.PolicyFor(kind), basis, payments, nil)
	return domain.PortalItem{
		ID:          id,
		Kind:        kind,
		Description: description,
		Status:      status,
		TotalInEUR:  summary.TotalInEUR,
		OnAccount:   summary.OnAccount,
		Balance:     summary.Balance,
		Payments:    payments,
		CreatedAt:   createdAt,
	}
}

func flightDescription(f domain.Flight) string {
	parts := make([]string, 0, 2)
	if f.Airline != "" {
		parts = append(parts, f.Airline)
	}
	if f.PNR != "" {
		parts = append(parts, f.PNR)
	}
	return strings.Join(parts, " ")
}

// GetPortalOverview recomputes the ledger of every transaction of the client
// rather than trusting stored figures. Cancelled items do not count towards
// the outstanding balance.
func (s *portalService) GetPortalOverview(ctx context.Context, clientID string) (*domain.PortalOverview, error) {
	flights, err := s.flightRepo.ListFlightsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client flights", "client_id", clientID)
		return nil, fmt.Errorf("failed to load portal flights: %w", err)
	}
	transfers, err := s.transferRepo.ListTransfersByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client transfers", "client_id", clientID)
		return nil, fmt.Errorf("failed to load portal transfers: %w", err)
	}
	translations, err := s.translationRepo.ListTranslationsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client translations", "client_id", clientID)
		return nil, fmt.Errorf("failed to load portal translations: %w", err)
	}

	items := make([]domain.PortalItem, 0, len(flights)+len(transfers)+len(translations))
	for _, f := range flights {
		items = append(items, portalItem(f.FlightID, domain.KindFlight, flightDescription(f), f.Status, f.LedgerBasis(), f.Payments, f.CreatedAt))
	}
	for _, t := range transfers {
		items = append(items, portalItem(t.TransferID, domain.KindTransfer, t.BeneficiaryName, t.Status, t.LedgerBasis(), t.Payments, t.CreatedAt))
	}
	for _, t := range translations {
		kind := t.ServiceType
		if kind == "" {
			kind = domain.KindTranslation
		}
		items = append(items, portalItem(t.TranslationID, kind, t.Description, t.Status, t.LedgerBasis(), t.Payments, t.CreatedAt))
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	outstanding := decimal.Zero
	for _, it := range items {
		if it.Status != domain.StatusCancelled {
			outstanding = outstanding.Add(it.Balance)
		}
	}

	return &domain.PortalOverview{
		ClientID:    clientID,
		Items:       items,
		Outstanding: accounting.Round(outstanding),
	}, nil
}
