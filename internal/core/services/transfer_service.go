package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// transferService manages money transfers.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	documentSvc  portssvc.DocumentSvc
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, documentSvc portssvc.DocumentSvc) portssvc.TransferSvcFacade {
	return &transferService{
		BaseService:  newBaseService(),
		transferRepo: transferRepo,
		documentSvc:  documentSvc,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// applyTransferLedger derives commission, amounts, on-account, balance and net
// profit from what was sent, the rate and the percentage.
func applyTransferLedger(t *domain.MoneyTransfer) {
	t.AmountSent = accounting.Round(t.AmountSent)
	t.ExchangeRate = t.ExchangeRate.Round(accounting.RatePlaces)
	t.CommissionPercentage = t.CommissionPercentage.Round(accounting.PercentPlaces)
	quote := accounting.QuoteTransfer(t.AmountSent, t.ExchangeRate, t.CommissionPercentage, t.Mode)
	t.Commission = quote.Commission
	t.AmountReceived = quote.AmountReceived
	t.TotalAmount = quote.TotalAmount

	summary := accounting.Summarize(accounting.TransferPolicy{}, t.LedgerBasis(), t.Payments, nil)
	t.OnAccount = summary.OnAccount
	t.Balance = summary.Balance
	t.NetProfit = accounting.TransferNetProfit(t.Commission, t.ExchangeRate, t.Mode, t.Expenses)
}

func (s *transferService) ListTransfers(ctx context.Context, params dto.ListParams) (*dto.ListTransfersResponse, error) {
	transfers, nextToken, err := s.transferRepo.ListTransfers(ctx, filterFromParams(params), limitOrDefault(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers from repository")
		return nil, fmt.Errorf("failed to retrieve transfers: %w", err)
	}
	return &dto.ListTransfersResponse{
		Transfers: dto.ToTransferResponses(transfers),
		NextToken: nextToken,
	}, nil
}

func (s *transferService) GetTransfer(ctx context.Context, transferID string) (*domain.MoneyTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", transferID, err)
	}
	return transfer, nil
}

func (s *transferService) CreateTransfer(ctx context.Context, req dto.TransferRequest, uploads []dto.Upload, userID string) (*domain.MoneyTransfer, error) {
	now := s.Now()
	transferID := uuid.NewString()

	if err := checkProofIndexes(uploads, len(req.Payments)); err != nil {
		return nil, err
	}
	stored, err := s.documentSvc.StoreUploads(ctx, domain.KindTransfer, transferID, uploads)
	if err != nil {
		s.LogError(ctx, err, "Failed to store transfer uploads", slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to store transfer files: %w", err)
	}

	transfer := domain.MoneyTransfer{
		TransferID:  transferID,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	s.fillTransfer(&transfer, req, stored)

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer created",
		slog.String("transfer_id", transferID),
		slog.String("mode", string(transfer.Mode)),
		slog.String("net_profit", accounting.Format(transfer.NetProfit)))
	return &transfer, nil
}

func (s *transferService) UpdateTransfer(ctx context.Context, transferID string, req dto.TransferRequest, uploads []dto.Upload, userID string) (*domain.MoneyTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", transferID, err)
	}

	if err := checkProofIndexes(uploads, len(req.Payments)); err != nil {
		return nil, err
	}
	stored, err := s.documentSvc.StoreUploads(ctx, domain.KindTransfer, transferID, uploads)
	if err != nil {
		s.LogError(ctx, err, "Failed to store transfer uploads", slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to store transfer files: %w", err)
	}

	s.fillTransfer(transfer, req, stored)
	transfer.LastUpdatedAt = s.Now()
	transfer.LastUpdatedBy = userID

	if err := s.transferRepo.UpdateTransfer(ctx, *transfer); err != nil {
		s.LogError(ctx, err, "Failed to update transfer", slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to update transfer: %w", err)
	}
	return transfer, nil
}

func (s *transferService) fillTransfer(t *domain.MoneyTransfer, req dto.TransferRequest, stored *dto.StoredUploads) {
	now := s.Now()
	t.ClientID = req.ClientID
	t.AgentID = req.AgentID
	t.BeneficiaryName = req.BeneficiaryName
	t.BeneficiaryDocument = req.BeneficiaryDocument
	t.BeneficiaryBank = req.BeneficiaryBank
	t.BeneficiaryAccount = req.BeneficiaryAccount
	t.Mode = req.Mode
	t.AmountSent = req.AmountSent.Dec()
	t.ExchangeRate = req.ExchangeRate.Dec()
	t.CommissionPercentage = req.CommissionPercentage.Dec()
	t.Payments = buildPayments(req.Payments, proofsOf(stored), now)
	t.Expenses = buildExpenses(req.Expenses, now)
	t.Documents = mergeDocuments(req.Documents, stored)
	t.Status = statusOrPending(req.Status)
	applyTransferLedger(t)
}

func (s *transferService) UpdateTransferStatus(ctx context.Context, transferID string, status domain.Status, userID string) (*domain.MoneyTransfer, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", status))
	}
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", transferID, err)
	}
	transfer.Status = status
	transfer.LastUpdatedAt = s.Now()
	transfer.LastUpdatedBy = userID
	if err := s.transferRepo.UpdateTransfer(ctx, *transfer); err != nil {
		s.LogError(ctx, err, "Failed to update transfer status", slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to update transfer status: %w", err)
	}
	return transfer, nil
}

func (s *transferService) DeleteTransfer(ctx context.Context, transferID string) error {
	if err := s.transferRepo.DeleteTransfer(ctx, transferID); err != nil {
		return fmt.Errorf("failed to delete transfer %s: %w", transferID, err)
	}
	s.LogInfo(ctx, "Transfer deleted", slog.String("transfer_id", transferID))
	return nil
}
