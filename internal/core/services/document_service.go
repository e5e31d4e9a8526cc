package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// documentService stores uploads and signs download URLs.
type documentService struct {
	BaseService
	storage       portsrepo.DocumentStorage
	signer        portsrepo.DocumentURLSigner
	publicBaseURL string
}

// NewDocumentService creates a new DocumentService. Signed URLs are absolute
// when publicBaseURL is set and root relative otherwise.
func NewDocumentService(storage portsrepo.DocumentStorage, signer portsrepo.DocumentURLSigner, publicBaseURL string) portssvc.DocumentSvc {
	return &documentService{
		BaseService:   newBaseService(),
		storage:       storage,
		signer:        signer,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

var _ portssvc.DocumentSvc = (*documentService)(nil)

// safeFilename reduces a client supplied filename to [A-Za-z0-9._-].
func safeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}

func documentPath(kind domain.ServiceKind, ownerID, filename string) string {
	return path.Join(string(kind), ownerID, uuid.NewString()+"_"+safeFilename(filename))
}

func proofPath(kind domain.ServiceKind, ownerID, filename string) string {
	return path.Join("payment-proofs", string(kind), ownerID, uuid.NewString()+"_"+safeFilename(filename))
}

// cleanStoredPath rejects paths that would escape the storage root.
func cleanStoredPath(p string) (string, error) {
	cleaned := path.Clean("/" + p)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(p, "/") {
		return "", apperrors.NewValidationError("invalid document path")
	}
	return cleaned, nil
}

func (s *documentService) save(ctx context.Context, storage domain.StorageTag, p string, upload dto.Upload) (int64, error) {
	r, err := upload.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open upload %s: %w", upload.Field, err)
	}
	defer r.Close()
	return s.storage.Save(ctx, storage, p, r)
}

func (s *documentService) StoreUploads(ctx context.Context, kind domain.ServiceKind, ownerID string, uploads []dto.Upload) (*dto.StoredUploads, error) {
	stored := &dto.StoredUploads{Documents: []domain.Document{}, Proofs: map[int]string{}}

	for _, upload := range uploads {
		switch {
		case strings.HasPrefix(upload.Field, dto.PaymentProofPrefix):
			p := proofPath(kind, ownerID, upload.Filename)
			if _, err := s.save(ctx, domain.StorageImages, p, upload); err != nil {
				return nil, err
			}
			stored.Proofs[upload.Index] = p
		case strings.HasPrefix(upload.Field, dto.DocumentFilePrefix):
			p := documentPath(kind, ownerID, upload.Filename)
			size, err := s.save(ctx, domain.StorageR2, p, upload)
			if err != nil {
				return nil, err
			}
			stored.Documents = append(stored.Documents, domain.Document{
				Name:        upload.Filename,
				Path:        p,
				Storage:     domain.StorageR2,
				ContentType: upload.ContentType,
				Size:        size,
				UploadedAt:  s.Now(),
			})
		default:
			s.LogDebug(ctx, "Ignoring unknown upload field", slog.String("field", upload.Field))
		}
	}

	if len(uploads) > 0 {
		s.LogInfo(ctx, "Uploads stored",
			slog.String("kind", string(kind)),
			slog.String("owner_id", ownerID),
			slog.Int("documents", len(stored.Documents)),
			slog.Int("proofs", len(stored.Proofs)))
	}
	return stored, nil
}

func (s *documentService) StoreProof(ctx context.Context, kind domain.ServiceKind, ownerID string, upload dto.Upload) (string, error) {
	p := proofPath(kind, ownerID, upload.Filename)
	if _, err := s.save(ctx, domain.StorageImages, p, upload); err != nil {
		return "", err
	}
	return p, nil
}

func (s *documentService) RemoveProof(ctx context.Context, p string) error {
	cleaned, err := cleanStoredPath(p)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, domain.StorageImages, cleaned); err != nil {
		return fmt.Errorf("failed to delete payment proof: %w", err)
	}
	s.LogInfo(ctx, "Payment proof removed", slog.String("path", cleaned))
	return nil
}

func (s *documentService) GetDocumentURL(ctx context.Context, storage domain.StorageTag, p string) (*dto.DocumentURLResponse, error) {
	if !storage.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown storage %q", storage))
	}
	cleaned, err := cleanStoredPath(p)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.signer.Sign(storage, cleaned, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign document URL", slog.String("path", cleaned))
		return nil, fmt.Errorf("failed to sign document url: %w", err)
	}

	return &dto.DocumentURLResponse{
		URL:       fmt.Sprintf("%s/files/%s/%s?token=%s", s.publicBaseURL, storage, cleaned, token),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *documentService) OpenDocument(ctx context.Context, storage domain.StorageTag, p, token string) (io.ReadCloser, error) {
	if !storage.Valid() {
		return nil, apperrors.NewNotFoundError("document not found")
	}
	cleaned, err := cleanStoredPath(p)
	if err != nil {
		return nil, err
	}
	if err := s.signer.Verify(storage, cleaned, token); err != nil {
		s.GetLogger(ctx).Warn("Rejected document token", slog.String("path", cleaned), slog.String("error", err.Error()))
		return nil, err
	}
	return s.storage.Open(ctx, storage, cleaned)
}
