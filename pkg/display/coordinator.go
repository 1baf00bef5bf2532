// Package display owns the single visible surface of a catalog browsing
// session: suggestions, results, or the empty-input prompt.
//
// Every user action (keystroke, submit, category click, reset) is stamped
// with a monotonic generation. Batches launched by an older action may still
// be in flight when a newer action starts; their results are discarded at
// commit time instead of overwriting the display with stale content.
package display

import (
	"context"
	"errors"
	"sync"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/pokeapi"
)

// Coordinator consumes engine outputs and decides what is shown. Safe for
// concurrent use; all state lives behind its mutex.
type Coordinator struct {
	resolver *dex.Resolver
	suggest  *dex.SuggestionEngine
	filter   *dex.TypeFilterEngine

	mu    sync.Mutex
	gen   uint64
	state State
}

func NewCoordinator(catalog dex.Catalog) *Coordinator {
	r := dex.NewResolver(catalog)
	return &Coordinator{
		resolver: r,
		suggest:  dex.NewSuggestionEngine(r),
		filter:   dex.NewTypeFilterEngine(r),
		state:    idleState(),
	}
}

// Resolver exposes the session resolver so callers can share its cache.
func (c *Coordinator) Resolver() *dex.Resolver {
	return c.resolver
}

// State returns a copy of the current display state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// begin stamps a new user action and invalidates everything in flight.
func (c *Coordinator) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// commit applies next only if gen is still the latest action. A stale batch
// finishing late reports false and changes nothing.
func (c *Coordinator) commit(gen uint64, next State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		utils.Log.Debugf("dropping stale result (gen %d, current %d)", gen, c.gen)
		return false
	}
	c.state = next
	return true
}

// Input handles a keystroke in the search box: the current query text runs
// through the suggestion engine. An empty query hides every surface.
func (c *Coordinator) Input(ctx context.Context, query string) State {
	gen := c.begin()

	if dex.NormalizeKey(query) == "" {
		c.commit(gen, idleState())
		return c.State()
	}

	list, err := c.suggest.Suggest(ctx, query)
	if err != nil {
		// A failed index fetch surfaces like any other lookup failure:
		// a message inside the results surface.
		c.commit(gen, resultsMessageState(query, LookupErrMessage))
		return c.State()
	}
	c.commit(gen, suggestionsState(query, list))
	return c.State()
}

// Submit handles a search submission or a suggestion click. The suggestion
// surface is cleared; the search input is left as typed. Submitting nothing
// shows the prompt without touching the catalog.
func (c *Coordinator) Submit(ctx context.Context, query string) State {
	gen := c.begin()

	if dex.NormalizeKey(query) == "" {
		c.commit(gen, promptState())
		return c.State()
	}

	e, err := c.resolver.Resolve(ctx, query)
	switch {
	case err == nil:
		c.commit(gen, resultsState(query, []*dex.Entity{e}))
	case errors.Is(err, pokeapi.ErrNotFound):
		c.commit(gen, resultsMessageState(query, NotFoundMessage))
	default:
		c.commit(gen, resultsMessageState(query, LookupErrMessage))
	}
	return c.State()
}

// FilterType handles a category click. The search input is cleared; an empty
// category and a failed fetch both land inside the results surface.
func (c *Coordinator) FilterType(ctx context.Context, label string) State {
	gen := c.begin()

	list, err := c.filter.Filter(ctx, label)
	switch {
	case err != nil:
		c.commit(gen, resultsMessageState("", LookupErrMessage))
	case len(list) == 0:
		c.commit(gen, resultsMessageState("", NoResultsMessage))
	default:
		c.commit(gen, resultsState("", list))
	}
	return c.State()
}

// Reset clears the input and hides every surface. The resolver cache is
// untouched: it lives for the whole process.
func (c *Coordinator) Reset() State {
	gen := c.begin()
	c.commit(gen, idleState())
	return c.State()
}
