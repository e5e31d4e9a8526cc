package storage

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
)

const documentTokenIssuer = "agency-documents"

// JWTURLSigner signs download tokens as HS256 JWTs whose subject is the file
// path and audience the storage tag.
type JWTURLSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTURLSigner(secret string, ttl time.Duration) *JWTURLSigner {
	return &JWTURLSigner{secret: []byte(secret), ttl: ttl}
}

var _ portsrepo.DocumentURLSigner = (*JWTURLSigner)(nil)

func (s *JWTURLSigner) Sign(storage domain.StorageTag, path string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    documentTokenIssuer,
		Subject:   path,
		Audience:  jwt.ClaimStrings{string(storage)},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign document token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *JWTURLSigner) Verify(storage domain.StorageTag, path, token string) error {
	if token == "" {
		return forbidden("missing document token", nil)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(documentTokenIssuer),
		jwt.WithAudience(string(storage)),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return forbidden("document link expired", err)
		}
		return forbidden("invalid document token", err)
	}
	if claims.Subject != path {
		return forbidden("document token does not match path", nil)
	}
	return nil
}

func forbidden(message string, cause error) error {
	if cause != nil {
		return apperrors.NewAppError(http.StatusForbidden, message, fmt.Errorf("%w: %v", apperrors.ErrForbidden, cause))
	}
	return apperrors.NewAppError(http.StatusForbidden, message, apperrors.ErrForbidden)
}
