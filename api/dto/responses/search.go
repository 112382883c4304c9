// ABOUTME: Response DTOs for the search endpoints
// ABOUTME: Keeps the code/msg/data envelope existing front-end clients expect

package responses

// Envelope codes
const (
	CodeOK         = 200
	CodeBadRequest = 400
)

// SearchItem is one ranked resource in a search response
type SearchItem struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	EntityName     string   `json:"entity_name"`
	Description    string   `json:"description"`
	Snippet        string   `json:"snippet"`
	ImageURL       string   `json:"image_url"`
	Source         string   `json:"source"`
	SourceURL      string   `json:"source_url"`
	Tags           []string `json:"tags"`
	Origin         string   `json:"origin"`
	RelevanceScore float64  `json:"relevance_score"`
	TypeWeight     float64  `json:"type_weight"`
	CombinedScore  float64  `json:"combined_score"`
	Similarity     float64  `json:"similarity"`
}

// AIAnalysis echoes the keyword hint an AI search used
type AIAnalysis struct {
	Keywords    []string `json:"keywords"`
	SearchQuery string   `json:"search_query"`
}

// SearchResponse is one page of search results
type SearchResponse struct {
	Code       int          `json:"code"`
	Msg        string       `json:"msg"`
	Data       []SearchItem `json:"data"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
	AIAnalysis *AIAnalysis  `json:"ai_analysis,omitempty"`
}

// PreprocessData describes how a query is tokenized and expanded
type PreprocessData struct {
	Original string   `json:"original"`
	Cleaned  string   `json:"cleaned"`
	Expanded []string `json:"expanded"`
	Keywords []string `json:"keywords"`
}

// PreprocessResponse wraps PreprocessData
type PreprocessResponse struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg"`
	Data PreprocessData `json:"data"`
}

// StatisticsData summarises the recent search history
type StatisticsData struct {
	TotalSearches int    `json:"total_searches"`
	UniqueQueries int    `json:"unique_queries"`
	LastSearch    string `json:"last_search"`
}

// StatisticsResponse wraps StatisticsData
type StatisticsResponse struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg"`
	Data StatisticsData `json:"data"`
}

// HealthResponse reports liveness and index availability
type HealthResponse struct {
	Status   string `json:"status"`
	Fulltext bool   `json:"fulltext"`
}
