package ranking

import (
	"testing"

	"cultural-search-api/core/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identity(t *testing.T) {
	s := NewScorer(lexicon.Default())

	for _, text := range []string{"", "春节", "春节 庙会 灯会", "的", "hello world"} {
		assert.Equal(t, 1.0, s.Similarity(text, text), "similarity(%q, %q)", text, text)
	}
}

func TestSimilarity_EmptyInputs(t *testing.T) {
	s := NewScorer(lexicon.Default())

	assert.Equal(t, 1.0, s.Similarity("", ""))
	assert.Equal(t, 0.0, s.Similarity("春节", ""))
	assert.Equal(t, 0.0, s.Similarity("", "春节"))
}

func TestSimilarity_KeywordEdgeCases(t *testing.T) {
	s := NewScorer(lexicon.Default())

	// both sides reduce to no keywords
	assert.Equal(t, 1.0, s.Similarity("的", "了"))
	// only one side does
	assert.Equal(t, 0.0, s.Similarity("的", "春节"))
}

func TestSimilarity_Blend(t *testing.T) {
	s := NewScorer(lexicon.Default())

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"disjoint", "春节 庙会", "中秋 赏月", 0.0},
		{"same keywords different text", "春节，庙会", "春节 庙会", 1.0},
		{"half overlap aligned", "春节 庙会", "春节 灯会", 0.7/3 + 0.3/2},
		{"same set reversed", "春节 庙会", "庙会 春节", 0.7},
		{"prefix", "春节", "春节 庙会", 0.7/2 + 0.3/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	s := NewScorer(lexicon.Default())

	texts := []string{"", "春节", "春节 庙会", "庙会 春节 灯会", "中秋节 月饼", "的 了", "a b c"}
	for _, a := range texts {
		for _, b := range texts {
			assert.Equal(t, s.Similarity(a, b), s.Similarity(b, a), "similarity(%q, %q)", a, b)
		}
	}
}

func TestSimilarity_Bounded(t *testing.T) {
	s := NewScorer(lexicon.Default())

	texts := []string{"春节", "春节 庙会", "春节 春节 庙会", "灯会", "元宵节 灯会 猜灯谜"}
	for _, a := range texts {
		for _, b := range texts {
			sim := s.Similarity(a, b)
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}
