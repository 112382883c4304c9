// ABOUTME: Bounded in-memory record of accepted search queries
// ABOUTME: Backs the search statistics endpoint

package search

import (
	"sync"

	"cultural-search-api/core/domain"
)

// History keeps the most recent queries, oldest first
type History struct {
	mu       sync.Mutex
	capacity int
	queries  []string
}

// NewHistory creates a history holding at most capacity queries
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 100
	}
	return &History{
		capacity: capacity,
		queries:  make([]string, 0, capacity),
	}
}

// Record appends query, evicting the oldest entry when full.
// Blank queries are ignored.
func (h *History) Record(query string) {
	if query == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.queries) == h.capacity {
		copy(h.queries, h.queries[1:])
		h.queries = h.queries[:len(h.queries)-1]
	}
	h.queries = append(h.queries, query)
}

// Statistics summarises the recorded queries
func (h *History) Statistics() domain.SearchStatistics {
	h.mu.Lock()
	defer h.mu.Unlock()

	unique := make(map[string]struct{}, len(h.queries))
	for _, q := range h.queries {
		unique[q] = struct{}{}
	}

	stats := domain.SearchStatistics{
		TotalSearches: len(h.queries),
		UniqueQueries: len(unique),
	}
	if n := len(h.queries); n > 0 {
		stats.LastSearch = h.queries[n-1]
	}
	return stats
}
