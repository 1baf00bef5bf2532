package dex

import (
	"context"
	"strings"
	"sync"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/pokeapi"
)

// Catalog is the read-only remote data source the resolver and engines pull
// from. *pokeapi.Client satisfies it; tests plug in fakes.
type Catalog interface {
	Lookup(ctx context.Context, key string) (pokeapi.Record, error)
	ListNames(ctx context.Context, limit, offset int) ([]string, error)
	TypeMembers(ctx context.Context, label string) ([]string, error)
}

// Resolver resolves lookup keys against the catalog and memoizes successful
// results for the lifetime of the process. Nothing is ever evicted.
//
// Cache slots are keyed by the exact normalized key string. "25" and
// "pikachu" denote the same entry upstream but occupy independent slots, each
// holding its own Entity instance. That mirrors the lookup behavior users
// see and is deliberately not deduplicated.
//
// There is no request coalescing: two concurrent first-time resolves of the
// same key both hit the remote, and both write equivalent entries. Wasteful,
// but harmless, since cache writes per key are idempotent.
type Resolver struct {
	catalog Catalog

	mu    sync.RWMutex
	cache map[string]*Entity
}

func NewResolver(c Catalog) *Resolver {
	return &Resolver{
		catalog: c,
		cache:   make(map[string]*Entity),
	}
}

// Resolve normalizes key, serves from cache when possible, and otherwise
// performs one remote lookup. Failed resolutions are never cached; a later
// call for the same key hits the remote again.
func (r *Resolver) Resolve(ctx context.Context, key string) (*Entity, error) {
	key = NormalizeKey(key)
	if key == "" {
		return nil, ErrEmptyQuery
	}

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		utils.Log.Debugf("cache hit for %q", key)
		return cached, nil
	}

	rec, err := r.catalog.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	e, err := NewEntity(rec)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = e
	r.mu.Unlock()
	utils.Log.Debugf("cached %q (#%d)", key, e.ID)

	return e, nil
}

// CacheLen reports how many slots the cache currently holds.
func (r *Resolver) CacheLen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// NormalizeKey lowercases and trims a lookup key. Every cache access and
// every remote lookup goes through this.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
