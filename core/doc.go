// Package core contains the search logic of the Cultural Search API.
// It has no knowledge of HTTP, SQL or any concrete AI service and can be
// used independently of the infrastructure that feeds it.
//
// The core package is organized into several sub-packages:
//
// - domain: Search candidates, keyword hints and paginated results
// - lexicon: Tokenizing, stopword removal and synonym query expansion
// - ranking: Jaccard plus positional similarity and the candidate ranker
// - search: Multi-source fanout, merging, pagination and search history
// - errors: Custom error types for source, hint and validation failures
// - interfaces: Contracts for data sources, hint providers, cache, HTTP, logger and metrics
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - A failing data source or hint provider degrades the result, never the request
// - Candidates live only for the duration of one search
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Sources: db.Sources(100), // []interfaces.DataSource
//	    Probe:   db,              // interfaces.FulltextProbe
//	    Hints:   hintProvider,    // optional
//	    Logger:  logger,
//	}
//
//	svc := search.NewSearchService(deps, lexicon.Default(), search.DefaultConfig())
//
//	result, err := svc.FullTextSearch(ctx, "春节", 1, 0)
package core
