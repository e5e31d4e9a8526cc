package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultDocumentURLSecret = "a-different-secret-for-document-urls"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Tokens are issued by the external auth provider; we only verify them.
	JWTSecret string
	JWTIssuer string

	DocumentURLSecret string
	DocumentURLTTL    time.Duration
	PublicBaseURL     string
	StorageRoot       string
	MaxUploadMB       int64

	RedisAddr       string
	CatalogCacheTTL time.Duration

	CORSAllowedOrigins []string
	PortalRateLimit    string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("DOCUMENT_URL_SECRET", defaultDocumentURLSecret)
	viper.SetDefault("DOCUMENT_URL_TTL", "15m")
	viper.SetDefault("PUBLIC_BASE_URL", "")
	viper.SetDefault("STORAGE_ROOT", "./data/storage")
	viper.SetDefault("MAX_UPLOAD_MB", 20)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("CATALOG_CACHE_TTL", "10m")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("PORTAL_RATE_LIMIT", "60-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		DocumentURLSecret: viper.GetString("DOCUMENT_URL_SECRET"),
		PublicBaseURL:     strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/"),
		StorageRoot:       viper.GetString("STORAGE_ROOT"),
		MaxUploadMB:       viper.GetInt64("MAX_UPLOAD_MB"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		PortalRateLimit:   viper.GetString("PORTAL_RATE_LIMIT"),
		PosthogAPIKey:     viper.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 20
	}

	cfg.DocumentURLTTL = parseDuration("DOCUMENT_URL_TTL", 15*time.Minute)
	cfg.CatalogCacheTTL = parseDuration("CATALOG_CACHE_TTL", 10*time.Minute)
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.DocumentURLSecret == "" || cfg.DocumentURLSecret == defaultDocumentURLSecret {
		if cfg.IsProduction {
			return nil, errors.New("DOCUMENT_URL_SECRET must be set in production")
		}
		cfg.DocumentURLSecret = defaultDocumentURLSecret
		log.Println("Warning: DOCUMENT_URL_SECRET not set. Using default insecure key.")
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
