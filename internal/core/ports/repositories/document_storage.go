package repositories

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// DocumentStorage stores uploaded files under a storage tag.
type DocumentStorage interface {
	// Save writes r to path, replacing anything already there, and returns the byte count.
	Save(ctx context.Context, storage domain.StorageTag, path string, r io.Reader) (int64, error)

	// Open returns a reader for path. Missing files yield apperrors.ErrNotFound.
	Open(ctx context.Context, storage domain.StorageTag, path string) (io.ReadCloser, error)

	// Delete removes path. Deleting a missing file succeeds.
	Delete(ctx context.Context, storage domain.StorageTag, path string) error
}

// DocumentURLSigner issues and verifies short-lived download URLs.
type DocumentURLSigner interface {
	Sign(storage domain.StorageTag, path string, now time.Time) (string, time.Time, error)
	Verify(storage domain.StorageTag, path, token string) error
}
