// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for keyword hints and search metrics

package interfaces

import (
	"context"
	"time"

	"cultural-search-api/core/domain"
)

// HintProvider suggests keywords for a raw query.
// A nil hint with a nil error means the provider had no advice.
type HintProvider interface {
	Hint(ctx context.Context, query string) (*domain.Hint, error)
}

// Metrics records search activity
type Metrics interface {
	// ObserveSearch records one completed search of the given kind
	ObserveSearch(kind string, duration time.Duration, results int)

	// SourceFailed counts a data source error that was absorbed
	SourceFailed(source string)

	// HintFailed counts a hint provider error that was absorbed
	HintFailed(provider string)
}
