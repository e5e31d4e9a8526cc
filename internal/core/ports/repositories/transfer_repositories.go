package repositories

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// TransferReader defines read operations for money transfer data
type TransferReader interface {
	FindTransferByID(ctx context.Context, transferID string) (*domain.MoneyTransfer, error)
	ListTransfers(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.MoneyTransfer, *string, error)
	ListTransfersByClient(ctx context.Context, clientID string) ([]domain.MoneyTransfer, error)
}

// TransferWriter defines write operations for money transfer data
type TransferWriter interface {
	SaveTransfer(ctx context.Context, transfer domain.MoneyTransfer) error
	UpdateTransfer(ctx context.Context, transfer domain.MoneyTransfer) error
	DeleteTransfer(ctx context.Context, transferID string) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
