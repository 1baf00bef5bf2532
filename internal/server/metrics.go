package server

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/pokeapi"
)

var catalogCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kantodex_catalog_calls_total",
	Help: "Remote catalog calls by operation and outcome.",
}, []string{"op", "outcome"})

var cacheGaugeOnce sync.Once

// registerCacheGauge exports the resolver's slot count. Guarded by a Once:
// the default registry rejects duplicate registration and the serve process
// only ever has one session resolver.
func registerCacheGauge(r *dex.Resolver) {
	cacheGaugeOnce.Do(func() {
		promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "kantodex_resolver_cache_slots",
			Help: "Number of memoized resolver cache slots.",
		}, func() float64 { return float64(r.CacheLen()) })
	})
}

// instrumentedCatalog counts every remote call before delegating.
type instrumentedCatalog struct {
	next dex.Catalog
}

func instrument(next dex.Catalog) dex.Catalog {
	return &instrumentedCatalog{next: next}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (c *instrumentedCatalog) Lookup(ctx context.Context, key string) (pokeapi.Record, error) {
	rec, err := c.next.Lookup(ctx, key)
	catalogCalls.WithLabelValues("lookup", outcome(err)).Inc()
	return rec, err
}

func (c *instrumentedCatalog) ListNames(ctx context.Context, limit, offset int) ([]string, error) {
	names, err := c.next.ListNames(ctx, limit, offset)
	catalogCalls.WithLabelValues("list", outcome(err)).Inc()
	return names, err
}

func (c *instrumentedCatalog) TypeMembers(ctx context.Context, label string) ([]string, error) {
	names, err := c.next.TypeMembers(ctx, label)
	catalogCalls.WithLabelValues("type_members", outcome(err)).Inc()
	return names, err
}
