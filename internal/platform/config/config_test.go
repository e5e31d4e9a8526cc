package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DOCUMENT_URL_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.DocumentURLTTL)
	assert.Equal(t, int64(20), cfg.MaxUploadMB)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("JWT_ISSUER", "agency-auth")
	t.Setenv("DOCUMENT_URL_TTL", "5m")
	t.Setenv("CATALOG_CACHE_TTL", "not-a-duration")
	t.Setenv("PUBLIC_BASE_URL", "https://files.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://dash.example.com, https://portal.example.com,")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "jwt-secret", cfg.JWTSecret)
	assert.Equal(t, "agency-auth", cfg.JWTIssuer)
	assert.Equal(t, 5*time.Minute, cfg.DocumentURLTTL)
	assert.Equal(t, 10*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, "https://files.example.com", cfg.PublicBaseURL)
	assert.Equal(t, []string{"https://dash.example.com", "https://portal.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, int64(5), cfg.MaxUploadMB)
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DOCUMENT_URL_SECRET", "doc-secret")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("DOCUMENT_URL_SECRET", "")
	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCUMENT_URL_SECRET")
}
