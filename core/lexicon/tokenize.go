package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// separators are the punctuation marks, half and full width, that split keywords
const separators = ",，。、；;：:"

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// isKeywordRune reports whether r can form a single-character keyword
func isKeywordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || (r >= 0x4E00 && r <= 0x9FFF)
}

// ExtractKeywords splits text into keyword tokens in order of appearance.
//
// Tokens of one rune or less and stopwords are dropped. When no token
// survives, the text is tokenized per character instead, keeping letters,
// digits and CJK ideographs that are not stopwords.
func (l *Lexicon) ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	var keywords []string
	for _, part := range strings.FieldsFunc(text, isSeparator) {
		part = strings.TrimSpace(part)
		if part == "" || utf8.RuneCountInString(part) <= 1 || l.IsStopword(part) {
			continue
		}
		keywords = append(keywords, part)
	}
	if len(keywords) > 0 {
		return keywords
	}

	for _, r := range text {
		if !isKeywordRune(r) {
			continue
		}
		ch := string(r)
		if !l.IsStopword(ch) {
			keywords = append(keywords, ch)
		}
	}
	return keywords
}

// RemoveStopwords deletes every occurrence of every stopword from text and
// collapses the remaining whitespace.
//
// Removal works on substrings, not tokens: a stopword embedded inside a
// longer word is removed as well ("我们" loses both characters).
func (l *Lexicon) RemoveStopwords(text string) string {
	if text == "" {
		return text
	}
	result := text
	for _, sw := range l.removalOrder {
		result = strings.ReplaceAll(result, sw, "")
	}
	return strings.Join(strings.Fields(result), " ")
}
