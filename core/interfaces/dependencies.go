// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Sources are queried for every query variant, in order
	Sources []DataSource

	// Probe reports fulltext index availability; nil means unavailable
	Probe FulltextProbe

	// Hints provides AI keyword hints; nil disables them
	Hints HintProvider

	// Cache provides caching functionality
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records search activity; nil disables it
	Metrics Metrics
}
