package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	n, err := s.Save(ctx, domain.StorageR2, "flight/f-1/abc_ticket.pdf", strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.FileExists(t, filepath.Join(root, "r2", "flight", "f-1", "abc_ticket.pdf"))

	rc, err := s.Open(ctx, domain.StorageR2, "flight/f-1/abc_ticket.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(body))
}

func TestLocalStorage_StorageTagsAreSeparate(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(ctx, domain.StorageImages, "payment-proofs/x.png", strings.NewReader("png"))
	require.NoError(t, err)

	_, err = s.Open(ctx, domain.StorageR2, "payment-proofs/x.png")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLocalStorage_RejectsEscapes(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	for _, p := range []string{"../secret", "a/../../secret", "", "."} {
		_, err := s.Save(ctx, domain.StorageR2, p, strings.NewReader("x"))
		assert.ErrorIs(t, err, apperrors.ErrValidation, p)
	}
	_, err = os.Stat(filepath.Join(root, "secret"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_UnknownStorage(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Open(context.Background(), domain.StorageTag("s3"), "a.txt")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	_, err = s.Save(ctx, domain.StorageImages, "payment-proofs/flight/f-1/p.png", strings.NewReader("png"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, domain.StorageImages, "payment-proofs/flight/f-1/p.png"))
	assert.NoFileExists(t, filepath.Join(root, "images", "payment-proofs", "flight", "f-1", "p.png"))

	assert.NoError(t, s.Delete(ctx, domain.StorageImages, "payment-proofs/flight/f-1/p.png"), "deleting twice is a no-op")
	assert.ErrorIs(t, s.Delete(ctx, domain.StorageImages, "../outside"), apperrors.ErrValidation)
}
