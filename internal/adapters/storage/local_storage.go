package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
)

// LocalStorage keeps each storage tag in its own directory under root.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates the per-tag directories under root.
func NewLocalStorage(root string) (*LocalStorage, error) {
	for _, tag := range []domain.StorageTag{domain.StorageR2, domain.StorageImages} {
		if err := os.MkdirAll(filepath.Join(root, string(tag)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir %s: %w", tag, err)
		}
	}
	return &LocalStorage{root: root}, nil
}

var _ portsrepo.DocumentStorage = (*LocalStorage)(nil)

func (s *LocalStorage) resolve(storage domain.StorageTag, path string) (string, error) {
	if !storage.Valid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown storage %q", storage))
	}
	base := filepath.Join(s.root, string(storage))
	full := filepath.Join(base, filepath.FromSlash(path))
	if full == base || !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", apperrors.NewValidationError("invalid document path")
	}
	return full, nil
}

func (s *LocalStorage) Save(ctx context.Context, storage domain.StorageTag, path string, r io.Reader) (int64, error) {
	full, err := s.resolve(storage, path)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}

func (s *LocalStorage) Open(ctx context.Context, storage domain.StorageTag, path string) (io.ReadCloser, error) {
	full, err := s.resolve(storage, path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NewNotFoundError("document not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Delete removes path. A missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, storage domain.StorageTag, path string) error {
	full, err := s.resolve(storage, path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
