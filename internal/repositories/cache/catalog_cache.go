package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "agency:catalog:"

// store is the subset of redis.Cmdable the cache needs.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache serves dropdown data from Redis and falls through to next on
// a miss. Redis failures are logged and never fail the request.
type CatalogCache struct {
	next  portsrepo.CatalogReader
	store store
	ttl   time.Duration
}

// NewCatalogCache wraps next with a Redis read-through cache.
func NewCatalogCache(next portsrepo.CatalogReader, client redis.Cmdable, ttl time.Duration) *CatalogCache {
	return &CatalogCache{next: next, store: client, ttl: ttl}
}

var _ portsrepo.CatalogReader = (*CatalogCache)(nil)

// readThrough returns the cached value of key or loads, caches and returns it.
func readThrough[T any](ctx context.Context, c *CatalogCache, key string, load func(context.Context) (T, error)) (T, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	fullKey := keyPrefix + key

	cached, err := c.store.Get(ctx, fullKey).Result()
	if err == nil {
		var value T
		if jsonErr := json.Unmarshal([]byte(cached), &value); jsonErr == nil {
			logger.Debug("Catalog loaded from cache", slog.String("key", fullKey))
			return value, nil
		}
		logger.Warn("Failed to unmarshal cached catalog", slog.String("key", fullKey))
	} else if !errors.Is(err, redis.Nil) {
		logger.Error("Redis GET command failed", slog.String("key", fullKey), slog.String("error", err.Error()))
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal catalog for cache", slog.String("key", fullKey), slog.String("error", err.Error()))
		return value, nil
	}
	if err := c.store.Set(ctx, fullKey, payload, c.ttl).Err(); err != nil {
		logger.Error("Redis SET command failed", slog.String("key", fullKey), slog.String("error", err.Error()))
	}
	return value, nil
}

func (c *CatalogCache) ListClients(ctx context.Context) ([]domain.ClientOption, error) {
	return readThrough(ctx, c, "clients", c.next.ListClients)
}

func (c *CatalogCache) ListPaymentMethods(ctx context.Context, country domain.Country) ([]domain.PaymentMethod, error) {
	return readThrough(ctx, c, "payment_methods:"+string(country), func(ctx context.Context) ([]domain.PaymentMethod, error) {
		return c.next.ListPaymentMethods(ctx, country)
	})
}

func (c *CatalogCache) ListItineraries(ctx context.Context) ([]domain.Itinerary, error) {
	return readThrough(ctx, c, "itineraries", c.next.ListItineraries)
}

func (c *CatalogCache) ListActivePermissions(ctx context.Context) ([]domain.Permission, error) {
	return readThrough(ctx, c, "permissions", c.next.ListActivePermissions)
}

func (c *CatalogCache) ListActivePermissionDetails(ctx context.Context) ([]domain.PermissionDetail, error) {
	return readThrough(ctx, c, "permission_details", c.next.ListActivePermissionDetails)
}
