package providers

import (
	"synthink/internal/structures"
	"time"

	"github.com/coocood/freecache"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// CacheProvider keeps encoded bodies of the read-only endpoints. Generation
// responses never pass through it.
type CacheProvider struct {
	store  *freecache.Cache
	ttl    int
	logger Logger
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	ttl := max(conf.Cache.TTL, 1)
	store := freecache.NewCache(conf.Cache.Size << 20)
	logger.Infof(TypeApp, "Response cache: %dMB, entries up to %dB, expiry %s",
		conf.Cache.Size, maxCacheEntry(conf.Cache.Size), time.Duration(ttl)*time.Second)

	return &CacheProvider{store: store, ttl: ttl, logger: logger}
}

// maxCacheEntry is the largest key+value freecache accepts for a cache of
// sizeMB megabytes.
func maxCacheEntry(sizeMB int) int {
	return (sizeMB << 20) / 1024
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.store.Get([]byte(key))
	return val, err == nil
}

// Set stores value under key. A rejected entry is logged and the caller keeps
// serving uncached.
func (c *CacheProvider) Set(key string, value []byte) {
	if err := c.store.Set([]byte(key), value, c.ttl); err != nil {
		c.logger.Warnf(TypeApp, "Cache rejected %s (%dB): %s", key, len(value), err)
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
