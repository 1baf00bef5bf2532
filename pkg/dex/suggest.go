package dex

import (
	"context"
	"fmt"
	"strings"

	"github.com/kantodex/kantodex/internal/utils"
)

// IndexSize is the fixed catalog window: the first 151 entries of the
// listing. Suggestions and type filters never look past it.
const IndexSize = 151

// SuggestionEngine turns a partial query into resolved entities drawn from
// the bounded name index.
type SuggestionEngine struct {
	resolver *Resolver
}

func NewSuggestionEngine(r *Resolver) *SuggestionEngine {
	return &SuggestionEngine{resolver: r}
}

// Suggest returns the resolved entities whose names contain query as a
// case-insensitive substring, in index order. An empty query returns an empty
// result immediately and issues no remote calls at all. A failed index fetch
// is reported as ErrBatchFailure, distinct from a valid zero-match result.
func (s *SuggestionEngine) Suggest(ctx context.Context, query string) ([]*Entity, error) {
	query = NormalizeKey(query)
	if query == "" {
		return nil, nil
	}

	index, err := s.resolver.catalog.ListNames(ctx, IndexSize, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: name index: %v", ErrBatchFailure, err)
	}

	var matches []string
	for _, name := range index {
		if strings.Contains(strings.ToLower(name), query) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}

	resolved, failed := s.resolver.ResolveAll(ctx, matches)
	if failed > 0 {
		utils.Log.Debugf("suggestion batch for %q dropped %d of %d members", query, failed, len(matches))
	}
	return resolved, nil
}
