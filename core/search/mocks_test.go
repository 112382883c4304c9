package search

import (
	"context"
	"sync"
	"time"

	"cultural-search-api/core/domain"
)

// mockSource is a mock implementation of the DataSource interface
type mockSource struct {
	name       string
	searchFunc func(ctx context.Context, query string, fulltext bool) ([]domain.SearchCandidate, error)

	mu      sync.Mutex
	queries []string
}

func (m *mockSource) Name() string {
	return m.name
}

func (m *mockSource) Search(ctx context.Context, query string, fulltext bool) ([]domain.SearchCandidate, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, fulltext)
	}
	return nil, nil
}

func (m *mockSource) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

// mockProbe is a mock implementation of the FulltextProbe interface
type mockProbe struct {
	available bool
	calls     int
}

func (m *mockProbe) FulltextAvailable(ctx context.Context) bool {
	m.calls++
	return m.available
}

// mockHints is a mock implementation of the HintProvider interface
type mockHints struct {
	hintFunc func(ctx context.Context, query string) (*domain.Hint, error)
}

func (m *mockHints) Hint(ctx context.Context, query string) (*domain.Hint, error) {
	if m.hintFunc != nil {
		return m.hintFunc(ctx, query)
	}
	return nil, nil
}

// mockMetrics is a mock implementation of the Metrics interface
type mockMetrics struct {
	mu             sync.Mutex
	searches       []string
	sourceFailures []string
	hintFailures   []string
}

func (m *mockMetrics) ObserveSearch(kind string, duration time.Duration, results int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches = append(m.searches, kind)
}

func (m *mockMetrics) SourceFailed(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceFailures = append(m.sourceFailures, source)
}

func (m *mockMetrics) HintFailed(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hintFailures = append(m.hintFailures, provider)
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}
