// internal/store/cache.go
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"vendor-advisor/internal/common/logger"
	"vendor-advisor/internal/models"
)

// SnapshotCache is a read-through cache over snapshot lookups. Cache failures
// are logged and degrade to the underlying store; they never fail a turn.
type SnapshotCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration, log logger.Logger) *SnapshotCache {
	return &SnapshotCache{
		redis: client,
		ttl:   ttl,
		logger: log.WithFields(map[string]interface{}{
			"component": "snapshot-cache",
		}),
	}
}

func cacheKey(userID string) string {
	return "snapshot:" + userID
}

// Get returns the cached snapshot and whether it was present.
func (c *SnapshotCache) Get(ctx context.Context, userID string) (models.FinancialSnapshot, bool) {
	val, err := c.redis.Get(ctx, cacheKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("cache read failed", map[string]interface{}{
				"userId": userID,
			})
		}
		return models.FinancialSnapshot{}, false
	}

	var snap models.FinancialSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		c.logger.WithError(err).Warn("cache entry corrupt, evicting", map[string]interface{}{
			"userId": userID,
		})
		c.redis.Del(ctx, cacheKey(userID))
		return models.FinancialSnapshot{}, false
	}
	return snap, true
}

func (c *SnapshotCache) Set(ctx context.Context, userID string, snap models.FinancialSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(userID), data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("cache write failed", map[string]interface{}{
			"userId": userID,
		})
	}
}

// Invalidate drops the cached snapshot after a new one is reported.
func (c *SnapshotCache) Invalidate(ctx context.Context, userID string) {
	if err := c.redis.Del(ctx, cacheKey(userID)).Err(); err != nil {
		c.logger.WithError(err).Warn("cache invalidation failed", map[string]interface{}{
			"userId": userID,
		})
	}
}

// CachedStore composes the PostgreSQL store with the snapshot cache.
type CachedStore struct {
	*Store
	cache *SnapshotCache
}

func NewCached(s *Store, cache *SnapshotCache) *CachedStore {
	return &CachedStore{Store: s, cache: cache}
}

// FetchLatestSnapshot serves from cache when possible and fills the cache on
// a database hit.
func (c *CachedStore) FetchLatestSnapshot(ctx context.Context, userID string) (models.FinancialSnapshot, error) {
	if snap, ok := c.cache.Get(ctx, userID); ok {
		return snap, nil
	}

	snap, err := c.Store.FetchLatestSnapshot(ctx, userID)
	if err != nil {
		return models.FinancialSnapshot{}, err
	}
	c.cache.Set(ctx, userID, snap)
	return snap, nil
}

// InsertSnapshot writes through to PostgreSQL and invalidates the cache so the
// next turn sees the new figures.
func (c *CachedStore) InsertSnapshot(ctx context.Context, userID string, snap models.FinancialSnapshot) error {
	if err := c.Store.InsertSnapshot(ctx, userID, snap); err != nil {
		return err
	}
	c.cache.Invalidate(ctx, userID)
	return nil
}
