package lexicon

import (
	"sort"
	"strings"
)

// ExpandQuery returns the query variants produced by the synonym dictionary.
//
// For every dictionary word found inside query, each other member of its
// group yields two variants: the query with the word replaced by the
// synonym, and the query with the word replaced by "<synonym> <word>".
// The original query is always the first element; the remaining variants
// are unique and sorted.
func (l *Lexicon) ExpandQuery(query string) []string {
	if query == "" {
		return []string{query}
	}

	seen := map[string]struct{}{query: {}}
	var variants []string
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	for _, word := range l.synonymWords {
		if !strings.Contains(query, word) {
			continue
		}
		for _, synonym := range l.synonyms[word] {
			if synonym == word {
				continue
			}
			add(strings.ReplaceAll(query, word, synonym))
			add(strings.ReplaceAll(query, word, synonym+" "+word))
		}
	}

	sort.Strings(variants)
	return append([]string{query}, variants...)
}
