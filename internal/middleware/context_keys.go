package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// Roles carried in the "role" claim of the bearer token.
const (
	RoleAdmin  = "admin"
	RoleAgent  = "agent"
	RoleClient = "client"
)

// WithUser returns a copy of ctx carrying the authenticated user and role.
func WithUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the role of the authenticated user.
func GetUserRoleFromContext(c *gin.Context) string {
	role, _ := c.Request.Context().Value(userRoleKey).(string)
	return role
}
