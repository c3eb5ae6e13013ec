package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

const (
	tenantCachePrefix = "tenant:schema:"
	tenantCacheTTL    = 5 * time.Minute
)

type cachedTenant struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	SchemaName string `json:"schema_name"`
	Slug       string `json:"slug"`
	IsActive   bool   `json:"is_active"`
}

// TenantCache is a read-through cache in front of tenant lookups by schema
// name. Every tenant-scoped request resolves the tenant, so these rows are
// hot. Cache failures fall through to the repository.
type TenantCache struct {
	client *redis.Client
	repo   tenant.Repository
	logger logger.Interface
}

func NewTenantCache(client *redis.Client, repo tenant.Repository, logger logger.Interface) *TenantCache {
	return &TenantCache{client: client, repo: repo, logger: logger.Named("tenantcache")}
}

// GetBySchemaName returns the tenant for a schema, consulting Redis first.
func (c *TenantCache) GetBySchemaName(ctx context.Context, schemaName string) (*tenant.Tenant, error) {
	key := tenantCachePrefix + schemaName

	if payload, err := c.client.Get(ctx, key).Result(); err == nil {
		var cached cachedTenant
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return &tenant.Tenant{
				ID:         cached.ID,
				Name:       cached.Name,
				SchemaName: cached.SchemaName,
				Slug:       cached.Slug,
				IsActive:   cached.IsActive,
			}, nil
		}
		c.logger.Warnw("discarding malformed tenant cache entry", "schema", schemaName)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warnw("tenant cache read failed", "schema", schemaName, "error", err)
	}

	t, err := c.repo.GetBySchemaName(ctx, schemaName)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedTenant{
		ID:         t.ID,
		Name:       t.Name,
		SchemaName: t.SchemaName,
		Slug:       t.Slug,
		IsActive:   t.IsActive,
	})
	if err == nil {
		if err := c.client.Set(ctx, key, payload, tenantCacheTTL).Err(); err != nil {
			c.logger.Warnw("tenant cache write failed", "schema", schemaName, "error", err)
		}
	}
	return t, nil
}

// Invalidate drops the cached entry after a tenant update.
func (c *TenantCache) Invalidate(ctx context.Context, schemaName string) error {
	if err := c.client.Del(ctx, tenantCachePrefix+schemaName).Err(); err != nil {
		return fmt.Errorf("failed to invalidate tenant cache: %w", err)
	}
	return nil
}
