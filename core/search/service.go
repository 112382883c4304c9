// ABOUTME: Search service runs full-text and AI-assisted searches over all data sources
// ABOUTME: Provides business logic for cultural resource search independent of HTTP layer

package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"cultural-search-api/core/domain"
	coreerrors "cultural-search-api/core/errors"
	"cultural-search-api/core/interfaces"
	"cultural-search-api/core/lexicon"
	"cultural-search-api/core/ranking"
)

// Search kinds reported to metrics
const (
	KindFullText = "fulltext"
	KindAI       = "ai"
)

// Config tunes the search service
type Config struct {
	// FullTextPageSize is the page size used when a full-text request gives none
	FullTextPageSize int

	// AIPageSize is the page size used when an AI request gives none
	AIPageSize int

	// HintTimeout bounds the hint provider call; zero means no extra deadline
	HintTimeout time.Duration

	// HintProvider names the hint backend in logs and metrics
	HintProvider string

	// HistorySize is the number of queries kept for statistics
	HistorySize int
}

// DefaultConfig returns the default search settings
func DefaultConfig() Config {
	return Config{
		FullTextPageSize: 100,
		AIPageSize:       8,
		HintTimeout:      3 * time.Second,
		HintProvider:     "python",
		HistorySize:      100,
	}
}

// SearchService handles cultural resource search operations
type SearchService struct {
	deps    interfaces.Dependencies
	lex     *lexicon.Lexicon
	ranker  *ranking.Ranker
	config  Config
	history *History
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, lex *lexicon.Lexicon, config Config) *SearchService {
	if lex == nil {
		lex = lexicon.Default()
	}
	defaults := DefaultConfig()
	if config.FullTextPageSize <= 0 {
		config.FullTextPageSize = defaults.FullTextPageSize
	}
	if config.AIPageSize <= 0 {
		config.AIPageSize = defaults.AIPageSize
	}
	if config.HintProvider == "" {
		config.HintProvider = defaults.HintProvider
	}

	return &SearchService{
		deps:    deps,
		lex:     lex,
		ranker:  ranking.NewRanker(lex),
		config:  config,
		history: NewHistory(config.HistorySize),
	}
}

// validateQuery trims query and rejects it when blank
func (s *SearchService) validateQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", &coreerrors.ValidationError{
			Field:   "q",
			Message: "search query cannot be empty",
		}
	}
	return q, nil
}

// FullTextSearch searches every source for the query and ranks the merged
// results against it. Synonym variants only influence ranking; they are
// sent to the sources on the AI path alone.
func (s *SearchService) FullTextSearch(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error) {
	q, err := s.validateQuery(query)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	candidates := s.fanout(ctx, []string{q}, s.fulltextAvailable(ctx))
	ranked := s.ranker.MergeAndRank(q, candidates)
	s.history.Record(q)

	result := s.toResult(Paginate(ranked, page, pageSize, s.config.FullTextPageSize))
	s.observe(KindFullText, q, start, result.Total)
	return result, nil
}

// AISearch asks the hint provider for keywords, searches every source for
// the hinted query, the hint keywords and the synonym variants, and ranks
// the merged results against the original query. Any hint failure falls
// back to the original query alone.
func (s *SearchService) AISearch(ctx context.Context, query string, page, pageSize int) (*domain.SearchResult, error) {
	q, err := s.validateQuery(query)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	hint := s.fetchHint(ctx, q)

	searchQuery := q
	keywords := []string{q}
	if hint != nil {
		if hinted := nonBlank(hint.Keywords); len(hinted) > 0 {
			keywords = hinted
			searchQuery = hinted[0]
		}
		if sq := strings.TrimSpace(hint.SearchQuery); sq != "" {
			searchQuery = sq
		}
	}

	queries := []string{searchQuery}
	queries = append(queries, keywords...)
	queries = append(queries, s.lex.ExpandQuery(searchQuery)...)

	candidates := s.fanout(ctx, uniqueNonBlank(queries), s.fulltextAvailable(ctx))
	ranked := s.ranker.MergeAndRank(q, candidates)
	s.history.Record(q)

	result := s.toResult(Paginate(ranked, page, pageSize, s.config.AIPageSize))
	if hint != nil {
		result.Hint = hint
	} else {
		result.Hint = &domain.Hint{Keywords: keywords, SearchQuery: searchQuery}
	}
	s.observe(KindAI, q, start, result.Total)
	return result, nil
}

// Preprocess reports how the core sees a raw query
func (s *SearchService) Preprocess(query string) domain.PreprocessedQuery {
	if query == "" {
		return domain.PreprocessedQuery{Expanded: []string{}, Keywords: []string{}}
	}
	keywords := s.lex.ExtractKeywords(query)
	if keywords == nil {
		keywords = []string{}
	}
	return domain.PreprocessedQuery{
		Original: query,
		Cleaned:  s.lex.RemoveStopwords(query),
		Expanded: s.lex.ExpandQuery(query),
		Keywords: keywords,
	}
}

// Statistics summarises recent searches
func (s *SearchService) Statistics() domain.SearchStatistics {
	return s.history.Statistics()
}

// FulltextAvailable reports whether the fulltext index can be used
func (s *SearchService) FulltextAvailable(ctx context.Context) bool {
	return s.fulltextAvailable(ctx)
}

type hintResult struct {
	hint *domain.Hint
	err  error
}

// fetchHint calls the hint provider under the configured deadline. It
// returns nil on any failure, including a provider that ignores ctx.
func (s *SearchService) fetchHint(ctx context.Context, query string) *domain.Hint {
	if s.deps.Hints == nil {
		return nil
	}

	hintCtx := ctx
	if s.config.HintTimeout > 0 {
		var cancel context.CancelFunc
		hintCtx, cancel = context.WithTimeout(ctx, s.config.HintTimeout)
		defer cancel()
	}

	ch := make(chan hintResult, 1)
	go func() {
		h, err := s.deps.Hints.Hint(hintCtx, query)
		ch <- hintResult{hint: h, err: err}
	}()

	var res hintResult
	select {
	case res = <-ch:
	case <-hintCtx.Done():
		res.err = hintCtx.Err()
	}

	if res.err != nil {
		s.hintFailed(&coreerrors.HintError{Provider: s.config.HintProvider, Err: res.err})
		return nil
	}
	return res.hint
}

func (s *SearchService) hintFailed(err *coreerrors.HintError) {
	if s.deps.Logger != nil {
		fields := map[string]interface{}{
			"provider": err.Provider,
			"error":    err.Error(),
		}
		if errors.Is(err, context.DeadlineExceeded) {
			fields["timeout"] = s.config.HintTimeout.String()
		}
		s.deps.Logger.Warn("Hint provider unavailable, searching without hint", fields)
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.HintFailed(err.Provider)
	}
}

func (s *SearchService) toResult(p Page) *domain.SearchResult {
	return &domain.SearchResult{
		Items:      p.Items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func (s *SearchService) observe(kind, query string, start time.Time, total int) {
	elapsed := time.Since(start)
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveSearch(kind, elapsed, total)
	}
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Search completed", map[string]interface{}{
			"kind":        kind,
			"query":       query,
			"results":     total,
			"duration_ms": elapsed.Milliseconds(),
		})
	}
}

func nonBlank(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// uniqueNonBlank keeps the first occurrence of every non-blank query
func uniqueNonBlank(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}
