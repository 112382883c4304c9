// ABOUTME: Search domain models for multi-source cultural resource search
// ABOUTME: Defines candidates, keyword hints and paginated search results

package domain

// CandidateKey identifies a logical resource across data sources.
// IDs are only unique within a source, so the title is part of the key.
type CandidateKey struct {
	ID    int64
	Title string
}

// SearchCandidate is a record produced by a data source during one search.
// Candidates are never persisted.
type SearchCandidate struct {
	// ID is the source-local identifier
	ID int64

	// Title is the display name used for relevance comparison
	Title string

	// Description is the free-text body used for relevance comparison
	Description string

	// ImageURL, SourceURL, Source and Tags are display metadata
	ImageURL  string
	SourceURL string
	Source    string
	Tags      []string

	// Origin names the data source that produced the candidate
	Origin string

	// RelevanceScore is the source-native match strength against the query
	RelevanceScore float64

	// TypeWeight is the fixed per-source trust multiplier
	TypeWeight float64

	// CombinedScore is RelevanceScore * TypeWeight
	CombinedScore float64

	// FinalScore is the similarity-based rank key set by the ranker
	FinalScore float64
}

// NewSearchCandidate creates a candidate with its derived combined score.
func NewSearchCandidate(id int64, title, description string, relevance, typeWeight float64) SearchCandidate {
	c := SearchCandidate{
		ID:          id,
		Title:       title,
		Description: description,
	}
	c.SetScores(relevance, typeWeight)
	return c
}

// SetScores updates both native scores and recomputes CombinedScore.
// Negative inputs are clamped to zero.
func (c *SearchCandidate) SetScores(relevance, typeWeight float64) {
	if relevance < 0 {
		relevance = 0
	}
	if typeWeight < 0 {
		typeWeight = 0
	}
	c.RelevanceScore = relevance
	c.TypeWeight = typeWeight
	c.CombinedScore = relevance * typeWeight
}

// Key returns the dedup identity of the candidate.
func (c SearchCandidate) Key() CandidateKey {
	return CandidateKey{ID: c.ID, Title: c.Title}
}

// FullText is the text compared against queries when ranking.
func (c SearchCandidate) FullText() string {
	return c.Title + " " + c.Description
}

// Hint is the keyword advice returned by the AI hint provider.
// Both fields are optional.
type Hint struct {
	Keywords    []string `json:"keywords"`
	SearchQuery string   `json:"search_query"`
}

// SearchResult is one page of ranked candidates
type SearchResult struct {
	Items      []SearchCandidate
	Total      int
	Page       int
	PageSize   int
	TotalPages int

	// Hint is the keyword hint the AI path used; nil for full-text search
	Hint *Hint
}

// PreprocessedQuery describes how a raw query is seen by the search core
type PreprocessedQuery struct {
	Original string
	Cleaned  string
	Expanded []string
	Keywords []string
}

// SearchStatistics summarises the recent search history
type SearchStatistics struct {
	TotalSearches int
	UniqueQueries int
	LastSearch    string
}
