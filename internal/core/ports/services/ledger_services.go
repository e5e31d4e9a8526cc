package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// LedgerSvc exposes the currency converter and the ledger aggregator to
// forms that preview figures before saving.
type LedgerSvc interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error)
	Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error)
}
