package handlers

import (
	"context"

	"cultural-search-api/core/domain"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	fullTextFunc   func(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error)
	aiFunc         func(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error)
	preprocessFunc func(query string) domain.PreprocessedQuery
	statistics     domain.SearchStatistics
}

func (m *mockSearchService) FullTextSearch(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error) {
	if m.fullTextFunc != nil {
		return m.fullTextFunc(ctx, query, page, pageSize)
	}
	return &domain.SearchResult{}, nil
}

func (m *mockSearchService) AISearch(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error) {
	if m.aiFunc != nil {
		return m.aiFunc(ctx, query, page, pageSize)
	}
	return &domain.SearchResult{}, nil
}

func (m *mockSearchService) Preprocess(query string) domain.PreprocessedQuery {
	if m.preprocessFunc != nil {
		return m.preprocessFunc(query)
	}
	return domain.PreprocessedQuery{Original: query}
}

func (m *mockSearchService) Statistics() domain.SearchStatistics {
	return m.statistics
}

// mockChecker reports a fixed fulltext availability
type mockChecker struct {
	available bool
}

func (m mockChecker) FulltextAvailable(ctx context.Context) bool {
	return m.available
}
