package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/path"
	"career-compass/internal/pkg/logger"

	"go.uber.org/zap"
)

// CareerPathsCacheTTL bounds how long generated career paths are served
// from cache before the generator is consulted again.
const CareerPathsCacheTTL = 7 * 24 * time.Hour

// KVCache is the backing key/value store for cached payloads. The Redis
// implementation in infrastructure/cache fails open: an unavailable
// store reads as a miss and writes as a no-op.
type KVCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type cachedCareerPaths struct {
	CachedAt time.Time         `json:"cached_at"`
	Paths    []path.CareerPath `json:"paths"`
}

// CareerPathCache is a time-boxed cache for generated career paths.
// Validity is judged by the stored cached_at stamp, not by store-level
// TTL, so entries survive store restarts without serving stale data.
type CareerPathCache struct {
	kv     KVCache
	logger logger.Logger
	now    func() time.Time
}

func NewCareerPathCache(kv KVCache, log logger.Logger) *CareerPathCache {
	if log == nil {
		log = logger.NewNop()
	}
	return &CareerPathCache{kv: kv, logger: log, now: time.Now}
}

// Get returns the cached paths for key while the entry is younger than
// CareerPathsCacheTTL. Expired entries are soft-invalidated and read as
// misses. Store errors also read as misses.
func (c *CareerPathCache) Get(ctx context.Context, key string) ([]path.CareerPath, bool) {
	if c == nil || c.kv == nil {
		return nil, false
	}

	var entry cachedCareerPaths
	hit, err := c.kv.GetJSON(ctx, key, &entry)
	if err != nil {
		c.logger.Warn("career path cache read failed, treating as miss",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !hit {
		return nil, false
	}

	if c.now().Sub(entry.CachedAt) >= CareerPathsCacheTTL {
		if err := c.kv.Delete(ctx, key); err != nil {
			c.logger.Warn("career path cache invalidate failed",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	if len(entry.Paths) == 0 {
		return nil, false
	}
	return entry.Paths, true
}

// Set upserts the paths under key with cached_at = now. Caching is a
// best-effort optimization: persistence failures are logged and
// swallowed, never surfaced to the caller.
func (c *CareerPathCache) Set(ctx context.Context, key string, paths []path.CareerPath) {
	if c == nil || c.kv == nil {
		return
	}

	entry := cachedCareerPaths{CachedAt: c.now().UTC(), Paths: paths}
	if err := c.kv.SetJSON(ctx, key, entry, CareerPathsCacheTTL); err != nil {
		c.logger.Warn("career path cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}
