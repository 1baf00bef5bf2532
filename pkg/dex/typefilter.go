package dex

import (
	"context"
	"fmt"
	"sort"

	"github.com/kantodex/kantodex/internal/utils"
)

// knownTypes is the recognized category label set: the fifteen original
// types. Labels outside it are rejected before any remote call.
var knownTypes = map[string]bool{
	"normal":   true,
	"fire":     true,
	"water":    true,
	"grass":    true,
	"electric": true,
	"ice":      true,
	"fighting": true,
	"poison":   true,
	"ground":   true,
	"flying":   true,
	"psychic":  true,
	"bug":      true,
	"rock":     true,
	"ghost":    true,
	"dragon":   true,
}

// KnownTypes returns the recognized labels, sorted, for help output.
func KnownTypes() []string {
	labels := make([]string, 0, len(knownTypes))
	for l := range knownTypes {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// TypeFilterEngine turns a category label into the resolved entities of that
// category, bounded by the catalog window.
type TypeFilterEngine struct {
	resolver *Resolver
}

func NewTypeFilterEngine(r *Resolver) *TypeFilterEngine {
	return &TypeFilterEngine{resolver: r}
}

// Filter fetches the category membership, truncates it to the first
// IndexSize names (members beyond that are never requested), and resolves
// the retained names concurrently. Individual failures are dropped; an empty
// result is a valid "no results for this category" outcome, not an error.
func (t *TypeFilterEngine) Filter(ctx context.Context, label string) ([]*Entity, error) {
	label = NormalizeKey(label)
	if !knownTypes[label] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, label)
	}

	members, err := t.resolver.catalog.TypeMembers(ctx, label)
	if err != nil {
		return nil, fmt.Errorf("%w: %s membership: %v", ErrBatchFailure, label, err)
	}

	if len(members) > IndexSize {
		members = members[:IndexSize]
	}

	resolved, failed := t.resolver.ResolveAll(ctx, members)
	if failed > 0 {
		utils.Log.Debugf("type batch for %q dropped %d of %d members", label, failed, len(members))
	}
	return resolved, nil
}
