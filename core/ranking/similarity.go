// ABOUTME: Text similarity blending keyword-set overlap with positional agreement
// ABOUTME: Used by the ranker to order merged search candidates against a query

package ranking

import "cultural-search-api/core/lexicon"

const (
	jaccardWeight    = 0.7
	positionalWeight = 0.3
)

// Scorer computes similarity between two free-text strings
type Scorer struct {
	lex *lexicon.Lexicon
}

// NewScorer creates a scorer that tokenizes with lex
func NewScorer(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Similarity returns a score in [0,1]: 0.7 * Jaccard overlap of the keyword
// sets plus 0.3 * the share of index-aligned equal keywords.
func (s *Scorer) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ka := s.lex.ExtractKeywords(a)
	kb := s.lex.ExtractKeywords(b)
	switch {
	case len(ka) == 0 && len(kb) == 0:
		return 1.0
	case len(ka) == 0 || len(kb) == 0:
		return 0.0
	}

	return jaccardWeight*jaccard(ka, kb) + positionalWeight*positional(ka, kb)
}

func jaccard(a, b []string) float64 {
	set := make(map[string]uint8, len(a)+len(b))
	for _, k := range a {
		set[k] |= 1
	}
	for _, k := range b {
		set[k] |= 2
	}
	if len(set) == 0 {
		return 0
	}

	intersection := 0
	for _, mask := range set {
		if mask == 3 {
			intersection++
		}
	}
	return float64(intersection) / float64(len(set))
}

func positional(a, b []string) float64 {
	longest := max(len(a), len(b))
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	matches := 0
	for i := range min(len(a), len(b)) {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(longest)
}
