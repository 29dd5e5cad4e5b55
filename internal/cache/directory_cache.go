package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyCities     = "directory:cities"
	keyIssueTypes = "directory:issue-types"
	keyCityPrefix = "directory:city:"
)

// DirectoryCache keeps department directory listings in Redis so the public
// lookup endpoints do not hit Postgres on every request. A nil client or any
// Redis failure degrades to a cache miss; the directory in Postgres stays
// authoritative.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewDirectoryCache builds the cache. ttl <= 0 disables caching entirely.
func NewDirectoryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DirectoryCache {
	return &DirectoryCache{client: client, ttl: ttl, logger: logger}
}

// GetCities returns the cached city list, or ok=false on a miss.
func (c *DirectoryCache) GetCities(ctx context.Context) ([]string, bool) {
	var cities []string
	return cities, c.get(ctx, keyCities, &cities)
}

// SetCities stores the city list.
func (c *DirectoryCache) SetCities(ctx context.Context, cities []string) {
	c.set(ctx, keyCities, cities)
}

// GetIssueTypes returns the cached issue-type list, or ok=false on a miss.
func (c *DirectoryCache) GetIssueTypes(ctx context.Context) ([]string, bool) {
	var issueTypes []string
	return issueTypes, c.get(ctx, keyIssueTypes, &issueTypes)
}

// SetIssueTypes stores the issue-type list.
func (c *DirectoryCache) SetIssueTypes(ctx context.Context, issueTypes []string) {
	c.set(ctx, keyIssueTypes, issueTypes)
}

// GetCityListing returns the cached raw payload for one city.
func (c *DirectoryCache) GetCityListing(ctx context.Context, city string, dest any) bool {
	return c.get(ctx, keyCityPrefix+city, dest)
}

// SetCityListing stores the payload for one city.
func (c *DirectoryCache) SetCityListing(ctx context.Context, city string, value any) {
	c.set(ctx, keyCityPrefix+city, value)
}

// Invalidate drops all directory keys after a department mutation.
func (c *DirectoryCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	iter := c.client.Scan(ctx, 0, keyCityPrefix+"*", 0).Iterator()
	keys := []string{keyCities, keyIssueTypes}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("directory cache scan failed", zap.Error(err))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("directory cache invalidation failed", zap.Error(err))
	}
}

func (c *DirectoryCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

func (c *DirectoryCache) get(ctx context.Context, key string, dest any) bool {
	if !c.enabled() {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("directory cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("directory cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *DirectoryCache) set(ctx context.Context, key string, value any) {
	if !c.enabled() {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("directory cache write failed", zap.String("key", key), zap.Error(err))
	}
}
