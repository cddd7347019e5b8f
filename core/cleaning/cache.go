package cleaning

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DictionaryCache front-ends the alias store with a TTL-cached, merged
// dictionary so concurrent session starts do not stampede the store.
// Sessions receive clones; the cached value itself is never mutated.
type DictionaryCache struct {
	store AliasStore
	ttl   time.Duration

	mu    sync.RWMutex
	dict  *Dictionary
	built time.Time
	sf    singleflight.Group
}

// NewDictionaryCache creates a cache over the store. A zero TTL disables
// caching; every Get loads fresh.
func NewDictionaryCache(store AliasStore, ttl time.Duration) *DictionaryCache {
	return &DictionaryCache{store: store, ttl: ttl}
}

// Get returns a clone of the current dictionary, loading it from the store
// when the cache is cold or expired. Concurrent cold loads are collapsed via
// singleflight.
func (c *DictionaryCache) Get(ctx context.Context) (*Dictionary, error) {
	c.mu.RLock()
	dict, fresh := c.dict, c.isFreshLocked()
	c.mu.RUnlock()

	if dict != nil && fresh {
		return dict.Clone(), nil
	}

	result, err, _ := c.sf.Do("dictionary", func() (any, error) {
		// Double-check after winning the flight.
		c.mu.RLock()
		dict, fresh := c.dict, c.isFreshLocked()
		c.mu.RUnlock()
		if dict != nil && fresh {
			return dict, nil
		}

		loaded, err := LoadDictionary(ctx, c.store)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.dict = loaded
		c.built = time.Now()
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Dictionary).Clone(), nil
}

// Invalidate drops the cached dictionary. Called after every rule promotion
// so other sessions observe newly learned rules on their next load.
func (c *DictionaryCache) Invalidate() {
	c.mu.Lock()
	c.dict = nil
	c.mu.Unlock()
}

// isFreshLocked reports cache freshness. Callers hold at least a read lock.
func (c *DictionaryCache) isFreshLocked() bool {
	if c.ttl == 0 {
		return false
	}
	return time.Since(c.built) <= c.ttl
}
