// ABOUTME: Immutable stopword and synonym dictionaries shared by the search core
// ABOUTME: Built once at startup and passed by reference to every search component

package lexicon

import (
	"sort"
	"unicode/utf8"
)

// Lexicon holds the stopword set and the synonym dictionary.
// A Lexicon is never mutated after construction, so concurrent reads are safe.
type Lexicon struct {
	stopwords map[string]struct{}

	// removalOrder lists stopwords longest first so substring removal is
	// deterministic ("一个" is removed before "一")
	removalOrder []string

	// synonyms maps every member of a group to the full group, itself included
	synonyms map[string][]string

	// synonymWords is the sorted key set of synonyms
	synonymWords []string
}

// New builds a Lexicon from a stopword list and synonym groups.
// Groups with fewer than two distinct members are ignored. When a word
// appears in several groups the last group wins.
func New(stopwords []string, groups [][]string) *Lexicon {
	l := &Lexicon{
		stopwords: make(map[string]struct{}, len(stopwords)),
		synonyms:  make(map[string][]string),
	}

	for _, w := range stopwords {
		if w == "" {
			continue
		}
		if _, ok := l.stopwords[w]; ok {
			continue
		}
		l.stopwords[w] = struct{}{}
		l.removalOrder = append(l.removalOrder, w)
	}
	sort.SliceStable(l.removalOrder, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(l.removalOrder[i]), utf8.RuneCountInString(l.removalOrder[j])
		if li != lj {
			return li > lj
		}
		return l.removalOrder[i] < l.removalOrder[j]
	})

	for _, group := range groups {
		members := uniqueNonEmpty(group)
		if len(members) < 2 {
			continue
		}
		for _, w := range members {
			l.synonyms[w] = members
		}
	}
	l.synonymWords = make([]string, 0, len(l.synonyms))
	for w := range l.synonyms {
		l.synonymWords = append(l.synonymWords, w)
	}
	sort.Strings(l.synonymWords)

	return l
}

// Default returns a Lexicon built from the built-in dictionaries
func Default() *Lexicon {
	return New(DefaultStopwords(), DefaultSynonymGroups())
}

// IsStopword reports whether token is in the stopword set
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[token]
	return ok
}

// StopwordCount returns the number of distinct stopwords
func (l *Lexicon) StopwordCount() int {
	return len(l.stopwords)
}

// Synonyms returns the group containing word, or nil.
// The returned slice is a copy.
func (l *Lexicon) Synonyms(word string) []string {
	group, ok := l.synonyms[word]
	if !ok {
		return nil
	}
	out := make([]string, len(group))
	copy(out, group)
	return out
}

// SynonymWordCount returns the number of words that have synonyms
func (l *Lexicon) SynonymWordCount() int {
	return len(l.synonyms)
}

func uniqueNonEmpty(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
