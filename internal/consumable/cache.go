package consumable

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedEntry wraps a consumable with version metadata for cache invalidation
type cachedEntry struct {
	Version    string             `json:"version"`
	Consumable *domain.Consumable `json:"consumable"`
	CachedAt   time.Time          `json:"cached_at"`
}

// catalogCache provides an in-memory LRU cache for catalog lookups
// with time-based expiration and version-based invalidation to prevent stale data.
// Entries are stored twice, keyed by ID and by lowercased name, so both lookup
// paths hit the same cached row.
type catalogCache struct {
	lru *expirable.LRU[string, *cachedEntry]
}

// newCatalogCache creates a new catalog cache with the specified size and TTL.
// size: maximum number of cached entries
// ttl: time-to-live for cached entries
func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func idKey(id string) string     { return "id:" + id }
func nameKey(name string) string { return "name:" + strings.ToLower(name) }

// get retrieves an entry from the cache by prebuilt key.
// Returns (consumable, true) if found and version matches.
// Automatically invalidates entries with mismatched versions.
func (c *catalogCache) get(key string) (*domain.Consumable, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}

	return entry.Consumable, true
}

// GetByID retrieves a consumable from the cache by ID.
func (c *catalogCache) GetByID(id string) (*domain.Consumable, bool) {
	return c.get(idKey(id))
}

// GetByName retrieves a consumable from the cache by case-insensitive name.
func (c *catalogCache) GetByName(name string) (*domain.Consumable, bool) {
	return c.get(nameKey(name))
}

// Set stores a consumable in the cache under both its ID and name keys.
func (c *catalogCache) Set(consumable *domain.Consumable) {
	entry := &cachedEntry{
		Version:    CacheSchemaVersion,
		Consumable: consumable,
		CachedAt:   time.Now(),
	}
	c.lru.Add(idKey(consumable.ID), entry)
	c.lru.Add(nameKey(consumable.Name), entry)
}

// Invalidate removes a consumable from the cache.
// Useful when catalog data is re-seeded.
func (c *catalogCache) Invalidate(consumable *domain.Consumable) {
	c.lru.Remove(idKey(consumable.ID))
	c.lru.Remove(nameKey(consumable.Name))
}

// Clear removes all entries from the cache.
func (c *catalogCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of entries currently cached.
func (c *catalogCache) Len() int {
	return c.lru.Len()
}
