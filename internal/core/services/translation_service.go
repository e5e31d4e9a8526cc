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

// translationService manages translations and miscellaneous services.
type translationService struct {
	BaseService
	translationRepo portsrepo.TranslationRepositoryFacade
	documentSvc     portssvc.DocumentSvc
}

// NewTranslationService creates a new TranslationService.
func NewTranslationService(translationRepo portsrepo.TranslationRepositoryFacade, documentSvc portssvc.DocumentSvc) portssvc.TranslationSvcFacade {
	return &translationService{
		BaseService:     newBaseService(),
		translationRepo: translationRepo,
		documentSvc:     documentSvc,
	}
}

var _ portssvc.TranslationSvcFacade = (*translationService)(nil)

// applyTranslationLedger recomputes the commission and the payment figures.
func applyTranslationLedger(t *domain.Translation) {
	t.NetAmount = accounting.Round(t.NetAmount)
	t.TotalAmount = accounting.Round(t.TotalAmount)
	t.Commission = accounting.Margin(t.NetAmount, t.TotalAmount)
	summary := accounting.Summarize(accounting.FlatPolicy{}, t.LedgerBasis(), t.Payments, nil)
	t.OnAccount = summary.OnAccount
	t.Balance = summary.Balance
}

func (s *translationService) ListTranslations(ctx context.Context, params dto.ListTranslationsParams) (*dto.ListTranslationsResponse, error) {
	filter := filterFromParams(params.ListParams)
	filter.ServiceType = domain.ServiceKind(params.ServiceType)

	translations, nextToken, err := s.translationRepo.ListTranslations(ctx, filter, limitOrDefault(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list translations from repository")
		return nil, fmt.Errorf("failed to retrieve translations: %w", err)
	}
	return &dto.ListTranslationsResponse{
		Translations: dto.ToTranslationResponses(translations),
		NextToken:    nextToken,
	}, nil
}

func (s *translationService) GetTranslation(ctx context.Context, translationID string) (*domain.Translation, error) {
	translation, err := s.translationRepo.FindTranslationByID(ctx, translationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get translation %s: %w", translationID, err)
	}
	return translation, nil
}

func (s *translationService) CreateTranslation(ctx context.Context, req dto.TranslationRequest, uploads []dto.Upload, userID string) (*domain.Translation, error) {
	now := s.Now()
	translationID := uuid.NewString()

	if err := checkProofIndexes(uploads, len(req.Payments)); err != nil {
		return nil, err
	}
	stored, err := s.documentSvc.StoreUploads(ctx, domain.KindTranslation, translationID, uploads)
	if err != nil {
		s.LogError(ctx, err, "Failed to store translation uploads", slog.String("translation_id", translationID))
		return nil, fmt.Errorf("failed to store translation files: %w", err)
	}

	translation := domain.Translation{
		TranslationID: translationID,
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	s.fillTranslation(&translation, req, stored)

	if err := s.translationRepo.SaveTranslation(ctx, translation); err != nil {
		s.LogError(ctx, err, "Failed to save translation", slog.String("translation_id", translationID))
		return nil, fmt.Errorf("failed to create translation: %w", err)
	}

	s.LogInfo(ctx, "Translation created", slog.String("translation_id", translationID), slog.String("service_type", string(translation.ServiceType)))
	return &translation, nil
}

func (s *translationService) UpdateTranslation(ctx context.Context, translationID string, req dto.TranslationRequest, uploads []dto.Upload, userID string) (*domain.Translation, error) {
	translation, err := s.translationRepo.FindTranslationByID(ctx, translationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get translation %s: %w", translationID, err)
	}

	if err := checkProofIndexes(uploads, len(req.Payments)); err != nil {
		return nil, err
	}
	stored, err := s.documentSvc.StoreUploads(ctx, domain.KindTranslation, translationID, uploads)
	if err != nil {
		s.LogError(ctx, err, "Failed to store translation uploads", slog.String("translation_id", translationID))
		return nil, fmt.Errorf("failed to store translation files: %w", err)
	}

	s.fillTranslation(translation, req, stored)
	translation.LastUpdatedAt = s.Now()
	translation.LastUpdatedBy = userID

	if err := s.translationRepo.UpdateTranslation(ctx, *translation); err != nil {
		s.LogError(ctx, err, "Failed to update translation", slog.String("translation_id", translationID))
		return nil, fmt.Errorf("failed to update translation: %w", err)
	}
	return translation, nil
}

func (s *translationService) fillTranslation(t *domain.Translation, req dto.TranslationRequest, stored *dto.StoredUploads) {
	t.ServiceType = req.ServiceType
	if t.ServiceType == "" {
		t.ServiceType = domain.KindTranslation
	}
	t.ClientID = req.ClientID
	t.AgentID = req.AgentID
	t.Description = req.Description
	t.DocumentType = req.DocumentType
	t.SourceLanguage = req.SourceLanguage
	t.TargetLanguage = req.TargetLanguage
	t.Quantity = req.Quantity
	t.NetAmount = req.NetAmount.Dec()
	t.TotalAmount = req.TotalAmount.Dec()
	t.Payments = buildPayments(req.Payments, proofsOf(stored), s.Now())
	t.Documents = mergeDocuments(req.Documents, stored)
	t.Status = statusOrPending(req.Status)
	applyTranslationLedger(t)
}

func (s *translationService) UpdateTranslationStatus(ctx context.Context, translationID string, status domain.Status, userID string) (*domain.Translation, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", status))
	}
	translation, err := s.translationRepo.FindTranslationByID(ctx, translationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get translation %s: %w", translationID, err)
	}
	translation.Status = status
	translation.LastUpdatedAt = s.Now()
	translation.LastUpdatedBy = userID
	if err := s.translationRepo.UpdateTranslation(ctx, *translation); err != nil {
		s.LogError(ctx, err, "Failed to update translation status", slog.String("translation_id", translationID))
		return nil, fmt.Errorf("failed to update translation status: %w", err)
	}
	return translation, nil
}

func (s *translationService) DeleteTranslation(ctx context.Context, translationID string) error {
	if err := s.translationRepo.DeleteTranslation(ctx, translationID); err != nil {
		return fmt.Errorf("failed to delete translation %s: %w", translationID, err)
	}
	s.LogInfo(ctx, "Translation deleted", slog.String("translation_id", translationID))
	return nil
}
