package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// TransferReaderSvc defines read operations for money transfers
type TransferReaderSvc interface {
	ListTransfers(ctx context.Context, params dto.ListParams) (*dto.ListTransfersResponse, error)
	GetTransfer(ctx context.Context, transferID string) (*domain.MoneyTransfer, error)
}

// TransferWriterSvc defines write operations for money transfers
type TransferWriterSvc interface {
	CreateTransfer(ctx context.Context, req dto.TransferRequest, uploads []dto.Upload, userID string) (*domain.MoneyTransfer, error)
	UpdateTransfer(ctx context.Context, transferID string, req dto.TransferRequest, uploads []dto.Upload, userID string) (*domain.MoneyTransfer, error)
	UpdateTransferStatus(ctx context.Context, transferID string, status domain.Status, userID string) (*domain.MoneyTransfer, error)
	DeleteTransfer(ctx context.Context, transferID string) error
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
