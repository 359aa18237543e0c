package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mitienda/tienda-api/internal/api/metrics"
	"github.com/mitienda/tienda-api/internal/core/domain"
)

const (
	catalogKey = "catalog:productos"
	catalogTTL = 5 * time.Minute
)

// CatalogCache keeps the full product listing in Redis between catalog
// mutations. It fails safe: any Redis error degrades to a cache miss so the
// storefront keeps working off MongoDB.
type CatalogCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewCatalogCache(client *redis.Client, logger zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, logger: logger}
}

func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("catalog cache read failed")
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache entry corrupt")
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return products, true
}

func (c *CatalogCache) Set(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
}

func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
