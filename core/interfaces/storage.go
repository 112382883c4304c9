// ABOUTME: Data source interfaces for the multi-source search fanout
// ABOUTME: Defines contracts for querying candidate records and probing fulltext support

package interfaces

import (
	"context"

	"cultural-search-api/core/domain"
)

// DataSource is one searchable table of cultural records.
// Implementations assign their own relevance ladder and type weight.
type DataSource interface {
	// Name identifies the source in logs and metrics
	Name() string

	// Search returns the records matching query. fulltext reports whether
	// the fulltext index may be used; when false the source falls back to
	// substring matching. No match is an empty slice, not an error.
	Search(ctx context.Context, query string, fulltext bool) ([]domain.SearchCandidate, error)
}

// FulltextProbe reports whether the fulltext index is available
type FulltextProbe interface {
	FulltextAvailable(ctx context.Context) bool
}
