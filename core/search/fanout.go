// ABOUTME: Multi-source query fanout over every configured data source
// ABOUTME: Absorbs per-source failures so one broken table never fails a search

package search

import (
	"context"

	"cultural-search-api/core/domain"
	coreerrors "cultural-search-api/core/errors"
)

// fulltextAvailable asks the probe once; callers reuse the answer for the
// whole request
func (s *SearchService) fulltextAvailable(ctx context.Context) bool {
	if s.deps.Probe == nil {
		return false
	}
	return s.deps.Probe.FulltextAvailable(ctx)
}

// fanout runs every query against every source and concatenates the
// candidates in query order, then source order.
func (s *SearchService) fanout(ctx context.Context, queries []string, fulltext bool) []domain.SearchCandidate {
	var all []domain.SearchCandidate
	for _, q := range queries {
		for _, src := range s.deps.Sources {
			if ctx.Err() != nil {
				return all
			}
			candidates, err := src.Search(ctx, q, fulltext)
			if err != nil {
				s.sourceFailed(&coreerrors.SourceError{Source: src.Name(), Query: q, Err: err})
				continue
			}
			all = append(all, candidates...)
		}
	}
	return all
}

func (s *SearchService) sourceFailed(err *coreerrors.SourceError) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn("Data source failed, treating as empty", map[string]interface{}{
			"source": err.Source,
			"query":  err.Query,
			"error":  err.Error(),
		})
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.SourceFailed(err.Source)
	}
}
