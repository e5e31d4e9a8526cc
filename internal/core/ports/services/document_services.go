package services

import (
	"context"
	"io"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// DocumentSvc stores uploaded files and hands out signed download URLs.
type DocumentSvc interface {
	// StoreUploads saves document and payment proof uploads of one transaction.
	StoreUploads(ctx context.Context, kind domain.ServiceKind, ownerID string, uploads []dto.Upload) (*dto.StoredUploads, error)

	// StoreProof saves a single payment proof and returns its path.
	StoreProof(ctx context.Context, kind domain.ServiceKind, ownerID string, upload dto.Upload) (string, error)

	// RemoveProof deletes a payment proof that no payment references any more.
	RemoveProof(ctx context.Context, path string) error

	GetDocumentURL(ctx context.Context, storage domain.StorageTag, path string) (*dto.DocumentURLResponse, error)

	// OpenDocument verifies token against storage and path before opening the file.
	OpenDocument(ctx context.Context, storage domain.StorageTag, path, token string) (io.ReadCloser, error)
}
