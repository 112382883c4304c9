// ABOUTME: Search handlers for the Huma API
// ABOUTME: Exposes full-text search, AI search, query preprocessing and search statistics

package handlers

import (
	"context"
	"net/http"
	"strings"

	"cultural-search-api/api/dto/mappers"
	"cultural-search-api/api/dto/responses"
	"cultural-search-api/core/domain"
	"cultural-search-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// emptyQueryMessage is returned when neither q nor keyword is given
const emptyQueryMessage = "请输入搜索关键词"

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	FullTextSearch(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error)
	AISearch(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error)
	Preprocess(query string) domain.PreprocessedQuery
	Statistics() domain.SearchStatistics
}

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// RegisterRoutes registers all search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fullTextSearch",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Full-text search",
		Description: "Searches every data source for the query and ranks results by similarity",
		Tags:        []string{"Search"},
	}, h.FullTextSearch)

	huma.Register(api, huma.Operation{
		OperationID: "aiSearch",
		Method:      http.MethodGet,
		Path:        "/api/ai_search",
		Summary:     "AI-assisted search",
		Description: "Asks the hint provider for keywords, searches for them and their synonyms, and ranks results against the original query",
		Tags:        []string{"Search"},
	}, h.AISearch)

	huma.Register(api, huma.Operation{
		OperationID: "preprocessQuery",
		Method:      http.MethodGet,
		Path:        "/api/search/preprocess",
		Summary:     "Preprocess a query",
		Description: "Shows the keywords, stopword-free form and synonym variants of a query",
		Tags:        []string{"Search"},
	}, h.Preprocess)

	huma.Register(api, huma.Operation{
		OperationID: "searchStatistics",
		Method:      http.MethodGet,
		Path:        "/api/search/statistics",
		Summary:     "Search statistics",
		Description: "Summarises the recent search history",
		Tags:        []string{"Search"},
	}, h.Statistics)
}

// SearchInput defines the query parameters shared by both search endpoints.
// Values below 1 are corrected by the service.
type SearchInput struct {
	Q        string `query:"q" doc:"Search query"`
	Keyword  string `query:"keyword" doc:"Alternative name for q, used when q is empty"`
	Page     int    `query:"page" default:"1" maximum:"100000" doc:"1-based page number"`
	PageSize int    `query:"page_size" maximum:"1000" doc:"Results per page; the endpoint default applies when omitted"`
}

func (in *SearchInput) query() string {
	if strings.TrimSpace(in.Q) != "" {
		return in.Q
	}
	return in.Keyword
}

// SearchOutput defines the output of both search endpoints
type SearchOutput struct {
	Status int
	Body   responses.SearchResponse
}

type searchFunc func(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error)

// FullTextSearch handles GET /api/search
func (h *SearchHandler) FullTextSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	return h.search(ctx, input, h.searchService.FullTextSearch)
}

// AISearch handles GET /api/ai_search
func (h *SearchHandler) AISearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	return h.search(ctx, input, h.searchService.AISearch)
}

func (h *SearchHandler) search(ctx context.Context, input *SearchInput, fn searchFunc) (*SearchOutput, error) {
	result, err := fn(ctx, input.query(), input.Page, input.PageSize)
	if err != nil {
		if errors.IsValidation(err) {
			return &SearchOutput{
				Status: http.StatusBadRequest,
				Body: responses.SearchResponse{
					Code: responses.CodeBadRequest,
					Msg:  emptyQueryMessage,
					Data: []responses.SearchItem{},
				},
			}, nil
		}
		return nil, toHumaError(err)
	}

	return &SearchOutput{
		Status: http.StatusOK,
		Body:   mappers.ToSearchResponse(result),
	}, nil
}

// PreprocessInput defines the input for the Preprocess operation
type PreprocessInput struct {
	Q string `query:"q" doc:"Query to preprocess"`
}

// PreprocessOutput defines the output for the Preprocess operation
type PreprocessOutput struct {
	Body responses.PreprocessResponse
}

// Preprocess handles GET /api/search/preprocess
func (h *SearchHandler) Preprocess(ctx context.Context, input *PreprocessInput) (*PreprocessOutput, error) {
	return &PreprocessOutput{
		Body: mappers.ToPreprocessResponse(h.searchService.Preprocess(input.Q)),
	}, nil
}

// StatisticsOutput defines the output for the Statistics operation
type StatisticsOutput struct {
	Body responses.StatisticsResponse
}

// Statistics handles GET /api/search/statistics
func (h *SearchHandler) Statistics(ctx context.Context, input *struct{}) (*StatisticsOutput, error) {
	return &StatisticsOutput{
		Body: mappers.ToStatisticsResponse(h.searchService.Statistics()),
	}, nil
}
