// ABOUTME: Merges candidates from every source and query variant into one ranked list
// ABOUTME: Deduplicates by (id, title) and orders by similarity to the original query

package ranking

import (
	"sort"
	"strings"

	"cultural-search-api/core/domain"
	"cultural-search-api/core/lexicon"
)

// titleContainmentFloor is the minimum final score of a candidate whose
// title contains the raw query
const titleContainmentFloor = 0.9

// Dedup collapses candidates sharing a (ID, Title) key. The survivor is the
// one with the higher CombinedScore; on a tie the first seen is kept.
// Survivors keep the position of the first sighting of their key.
func Dedup(candidates []domain.SearchCandidate) []domain.SearchCandidate {
	index := make(map[domain.CandidateKey]int, len(candidates))
	out := make([]domain.SearchCandidate, 0, len(candidates))

	for _, c := range candidates {
		key := c.Key()
		if i, ok := index[key]; ok {
			if c.CombinedScore > out[i].CombinedScore {
				out[i] = c
			}
			continue
		}
		index[key] = len(out)
		out = append(out, c)
	}
	return out
}

// Ranker orders merged candidates by similarity to the user's query
type Ranker struct {
	lex    *lexicon.Lexicon
	scorer *Scorer
}

// NewRanker creates a ranker using lex for tokenizing and synonym expansion
func NewRanker(lex *lexicon.Lexicon) *Ranker {
	return &Ranker{
		lex:    lex,
		scorer: NewScorer(lex),
	}
}

// MergeAndRank deduplicates candidates and sorts them by final score,
// highest first. Native relevance scores only decide which duplicate
// survives; they play no part in the final order. Equal scores keep
// their merged order.
func (r *Ranker) MergeAndRank(originalQuery string, candidates []domain.SearchCandidate) []domain.SearchCandidate {
	merged := Dedup(candidates)
	if len(merged) == 0 || originalQuery == "" {
		return merged
	}

	variants := r.lex.ExpandQuery(originalQuery)
	for i := range merged {
		merged[i].FinalScore = r.finalScore(originalQuery, variants, &merged[i])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FinalScore > merged[j].FinalScore
	})
	return merged
}

func (r *Ranker) finalScore(query string, variants []string, c *domain.SearchCandidate) float64 {
	text := c.FullText()

	score := r.scorer.Similarity(query, text)
	for _, v := range variants {
		if sim := r.scorer.Similarity(v, text); sim > score {
			score = sim
		}
	}

	if strings.Contains(c.Title, query) && score < titleContainmentFloor {
		score = titleContainmentFloor
	}
	return score
}
