package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// PortalSvc serves the client portal.
type PortalSvc interface {
	GetPortalOverview(ctx context.Context, clientID string) (*domain.PortalOverview, error)
}
