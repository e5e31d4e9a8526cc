package handlers_test

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed bearer token for the given user and role.
func generateTestToken(userID, role string) string {
	claims := middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "agency-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}
