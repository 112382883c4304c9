// ABOUTME: Mappers for converting search domain models to API DTOs
// ABOUTME: Derives display snippets and keeps empty lists as JSON arrays

package mappers

import (
	"cultural-search-api/api/dto/responses"
	"cultural-search-api/core/domain"
	"cultural-search-api/pkg/utils/html"
)

// SnippetLength is the number of runes kept in a result snippet
const SnippetLength = 100

// ToSearchResponse converts a result page to the response envelope
func ToSearchResponse(result *domain.SearchResult) responses.SearchResponse {
	resp := responses.SearchResponse{
		Code: responses.CodeOK,
		Msg:  "success",
		Data: []responses.SearchItem{},
	}
	if result == nil {
		return resp
	}

	for _, c := range result.Items {
		resp.Data = append(resp.Data, ToSearchItem(c))
	}
	resp.Total = result.Total
	resp.Page = result.Page
	resp.PageSize = result.PageSize
	resp.TotalPages = result.TotalPages

	if result.Hint != nil {
		keywords := result.Hint.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		resp.AIAnalysis = &responses.AIAnalysis{
			Keywords:    keywords,
			SearchQuery: result.Hint.SearchQuery,
		}
	}
	return resp
}

// ToSearchItem converts one ranked candidate
func ToSearchItem(c domain.SearchCandidate) responses.SearchItem {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return responses.SearchItem{
		ID:             c.ID,
		Title:          c.Title,
		EntityName:     c.Title,
		Description:    c.Description,
		Snippet:        html.Snippet(c.Description, SnippetLength),
		ImageURL:       c.ImageURL,
		Source:         c.Source,
		SourceURL:      c.SourceURL,
		Tags:           tags,
		Origin:         c.Origin,
		RelevanceScore: c.RelevanceScore,
		TypeWeight:     c.TypeWeight,
		CombinedScore:  c.CombinedScore,
		Similarity:     c.FinalScore,
	}
}

// ToPreprocessResponse converts a preprocessed query
func ToPreprocessResponse(p domain.PreprocessedQuery) responses.PreprocessResponse {
	return responses.PreprocessResponse{
		Code: responses.CodeOK,
		Msg:  "success",
		Data: responses.PreprocessData{
			Original: p.Original,
			Cleaned:  p.Cleaned,
			Expanded: p.Expanded,
			Keywords: p.Keywords,
		},
	}
}

// ToStatisticsResponse converts history statistics
func ToStatisticsResponse(s domain.SearchStatistics) responses.StatisticsResponse {
	return responses.StatisticsResponse{
		Code: responses.CodeOK,
		Msg:  "success",
		Data: responses.StatisticsData{
			TotalSearches: s.TotalSearches,
			UniqueQueries: s.UniqueQueries,
			LastSearch:    s.LastSearch,
		},
	}
}
