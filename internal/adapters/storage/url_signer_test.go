package storage

import (
	"testing"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTURLSigner_RoundTrip(t *testing.T) {
	signer := NewJWTURLSigner("secret", 15*time.Minute)
	now := time.Now()

	token, expiresAt, err := signer.Sign(domain.StorageR2, "flight/f-1/a.pdf", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(15*time.Minute), expiresAt, time.Second)

	assert.NoError(t, signer.Verify(domain.StorageR2, "flight/f-1/a.pdf", token))
}

func TestJWTURLSigner_Rejects(t *testing.T) {
	signer := NewJWTURLSigner("secret", 15*time.Minute)
	token, _, err := signer.Sign(domain.StorageR2, "flight/f-1/a.pdf", time.Now())
	require.NoError(t, err)

	expiredToken, _, err := signer.Sign(domain.StorageR2, "flight/f-1/a.pdf", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	otherKey, _, err := NewJWTURLSigner("other", time.Minute).Sign(domain.StorageR2, "flight/f-1/a.pdf", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name    string
		storage domain.StorageTag
		path    string
		token   string
	}{
		{"missing token", domain.StorageR2, "flight/f-1/a.pdf", ""},
		{"other path", domain.StorageR2, "flight/f-2/a.pdf", token},
		{"other storage", domain.StorageImages, "flight/f-1/a.pdf", token},
		{"expired", domain.StorageR2, "flight/f-1/a.pdf", expiredToken},
		{"wrong key", domain.StorageR2, "flight/f-1/a.pdf", otherKey},
		{"garbage", domain.StorageR2, "flight/f-1/a.pdf", "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := signer.Verify(tt.storage, tt.path, tt.token)
			assert.ErrorIs(t, err, apperrors.ErrForbidden)
		})
	}
}
