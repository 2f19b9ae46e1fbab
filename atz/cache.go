package atz

import (
	"strings"
	"sync"

	"github.com/jpfluger/atzresolve/alog"
)

// resolverCache is the process-wide memoisation of *Resolver instances,
// keyed by lower-cased canonical zone id, with an extra entry under each
// lower-cased spelling a caller has requested. Mirrors the sync.Once/package-
// level-var singleton idiom used elsewhere in this module's logging
// subsystem.
type resolverCache struct {
	mu        sync.Mutex
	resolvers map[string]*Resolver
}

var (
	globalCache     *resolverCache
	globalCacheOnce sync.Once
)

func cache() *resolverCache {
	globalCacheOnce.Do(func() {
		globalCache = &resolverCache{resolvers: make(map[string]*Resolver)}
	})
	return globalCache
}

// CacheGet returns a process-wide Resolver for id, constructing and caching
// it on first use. Concurrent callers requesting the same zone by
// different spellings (a zone name vs. one of its aliases) collapse onto a
// single cached Resolver, keyed by the canonical zone id.
func CacheGet(id string) (*Resolver, error) {
	c := cache()

	lookupKey := strings.ToLower(strings.TrimSpace(id))

	c.mu.Lock()
	if r, ok := c.resolvers[lookupKey]; ok {
		c.mu.Unlock()
		return r, nil
	}
	c.mu.Unlock()

	r, err := New(id)
	if err != nil {
		return nil, err
	}

	canonicalKey := strings.ToLower(r.ID())

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.resolvers[canonicalKey]; ok {
		// Another caller already compiled and cached this zone (possibly
		// under a different alias spelling); discard the duplicate and
		// collapse onto the existing one.
		c.resolvers[lookupKey] = existing
		return existing, nil
	}

	c.resolvers[canonicalKey] = r
	c.resolvers[lookupKey] = r

	alog.LOGGER(alog.LOGGER_ATZ).Debug().
		Str("canonical_id", r.ID()).
		Msg("atz resolver cache populated")

	return r, nil
}

// CacheReset clears the process-wide resolver cache. Intended for tests
// that need a clean slate between cases.
func CacheReset() {
	c := cache()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolvers = make(map[string]*Resolver)
}
