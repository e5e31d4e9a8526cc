package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// TranslationReaderSvc defines read operations for translations and other services
type TranslationReaderSvc interface {
	ListTranslations(ctx context.Context, params dto.ListTranslationsParams) (*dto.ListTranslationsResponse, error)
	GetTranslation(ctx context.Context, translationID string) (*domain.Translation, error)
}

// TranslationWriterSvc defines write operations for translations and other services
type TranslationWriterSvc interface {
	CreateTranslation(ctx context.Context, req dto.TranslationRequest, uploads []dto.Upload, userID string) (*domain.Translation, error)
	UpdateTranslation(ctx context.Context, translationID string, req dto.TranslationRequest, uploads []dto.Upload, userID string) (*domain.Translation, error)
	UpdateTranslationStatus(ctx context.Context, translationID string, status domain.Status, userID string) (*domain.Translation, error)
	DeleteTranslation(ctx context.Context, translationID string) error
}

// TranslationSvcFacade combines all translation-related service interfaces
type TranslationSvcFacade interface {
	TranslationReaderSvc
	TranslationWriterSvc
}
