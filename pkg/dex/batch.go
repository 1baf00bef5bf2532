package dex

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kantodex/kantodex/internal/utils"
)

// batchConcurrency bounds how many resolutions one batch has in flight.
const batchConcurrency = 5

// ResolveAll resolves keys concurrently and returns the successful entities
// in input order. The call waits for every member to settle; individual
// failures are dropped (logged at debug level) rather than failing the batch.
// The second return value is how many members failed.
func (r *Resolver) ResolveAll(ctx context.Context, keys []string) ([]*Entity, int) {
	if len(keys) == 0 {
		return nil, 0
	}

	results := make([]*Entity, len(keys))

	// Workers only ever return nil, so the group never cancels early: the
	// join is strictly wait-for-all, not fail-fast.
	g := new(errgroup.Group)
	g.SetLimit(batchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			e, err := r.Resolve(ctx, key)
			if err != nil {
				utils.Log.Debugf("dropping %q from batch: %v", key, err)
				return nil
			}
			results[i] = e
			return nil
		})
	}
	_ = g.Wait()

	resolved := make([]*Entity, 0, len(keys))
	for _, e := range results {
		if e != nil {
			resolved = append(resolved, e)
		}
	}
	return resolved, len(keys) - len(resolved)
}
