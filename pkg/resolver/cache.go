package resolver

import (
	"encoding/json"
	"log"
	"time"

	"github.com/benbjohnson/clock"
	lru "github.com/hashicorp/golang-lru/v2"

	"ton-dns-resolver/pkg/storage"
)

const (
	// A soft-expired entry is still served, but triggers a detached refresh;
	// a hard-expired entry behaves like a miss.
	softTTL = 270 * time.Second
	hardTTL = 300 * time.Second

	cacheSize = 1 << 16
)

// cacheEntry is the resolved terminal address for one domain name.
type cacheEntry struct {
	Address   string `json:"address"`
	CreatedAt int64  `json:"created_at"` // unix nanoseconds
}

// freshness tiers reported by lookup.
type freshness int

const (
	cacheMiss freshness = iota
	cacheFresh
	cacheStale // past soft TTL, within hard TTL
)

// resolutionCache holds the most recently resolved address per domain name:
// an in-memory LRU tier in front of an optional persistent store. Writes are
// plain overwrites, staleness is judged lazily at read time and entries are
// never explicitly deleted.
type resolutionCache struct {
	lru   *lru.Cache[string, cacheEntry]
	store storage.Store // may be nil
	clock clock.Clock
}

func newResolutionCache(store storage.Store, clk clock.Clock) *resolutionCache {
	c, _ := lru.New[string, cacheEntry](cacheSize) // only fails for non-positive size
	return &resolutionCache{
		lru:   c,
		store: store,
		clock: clk,
	}
}

// lookup returns the entry stored for name and its freshness tier. A
// hard-expired entry is reported as a miss; it stays in place until the next
// successful resolution overwrites it.
func (c *resolutionCache) lookup(name string) (cacheEntry, freshness) {
	entry, ok := c.lru.Get(name)
	if !ok {
		entry, ok = c.loadPersisted(name)
		if !ok {
			return cacheEntry{}, cacheMiss
		}
	}

	age := c.clock.Now().Sub(time.Unix(0, entry.CreatedAt))
	switch {
	case age >= hardTTL:
		return cacheEntry{}, cacheMiss
	case age >= softTTL:
		return entry, cacheStale
	default:
		return entry, cacheFresh
	}
}

// save overwrites the entry for name with a fresh timestamp, write-through
// to the persistent store when one is configured.
func (c *resolutionCache) save(name, address string) {
	entry := cacheEntry{
		Address:   address,
		CreatedAt: c.clock.Now().UnixNano(),
	}
	c.lru.Add(name, entry)

	if c.store == nil {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Failed to encode cache entry for %s: %v", name, err)
		return
	}
	if err := c.store.Put(name, data); err != nil {
		log.Printf("Failed to persist cache entry for %s: %v", name, err)
	}
}

// loadPersisted pulls an entry from the persistent store into the LRU tier.
func (c *resolutionCache) loadPersisted(name string) (cacheEntry, bool) {
	if c.store == nil {
		return cacheEntry{}, false
	}
	data, err := c.store.Get(name)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("Failed to read persisted cache entry for %s: %v", name, err)
		}
		return cacheEntry{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Printf("Failed to decode persisted cache entry for %s: %v", name, err)
		return cacheEntry{}, false
	}
	c.lru.Add(name, entry)
	return entry, true
}
