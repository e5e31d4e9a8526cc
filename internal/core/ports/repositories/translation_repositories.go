package repositories

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// TranslationReader defines read operations for translations and other services
type TranslationReader interface {
	FindTranslationByID(ctx context.Context, translationID string) (*domain.Translation, error)
	// ListTranslations honours filter.ServiceType in addition to status and client.
	ListTranslations(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.Translation, *string, error)
	ListTranslationsByClient(ctx context.Context, clientID string) ([]domain.Translation, error)
}

// TranslationWriter defines write operations for translations and other services
type TranslationWriter interface {
	SaveTranslation(ctx context.Context, translation domain.Translation) error
	UpdateTranslation(ctx context.Context, translation domain.Translation) error
	DeleteTranslation(ctx context.Context, translationID string) error
}

// TranslationRepositoryFacade combines all translation-related repository interfaces
type TranslationRepositoryFacade interface {
	TranslationReader
	TranslationWriter
}
