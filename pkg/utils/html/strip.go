// ABOUTME: HTML utilities for turning stored descriptions into display snippets
// ABOUTME: Strips markup with goquery and truncates text on rune boundaries

package html

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Ellipsis is appended to truncated snippets
const Ellipsis = "..."

// StripHTML removes tags, script and style content and collapses whitespace.
// Entities are decoded by the parser.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(s)
	}
	doc.Find("script, style").Remove()
	return collapse(doc.Text())
}

// Snippet strips s and keeps at most maxRunes runes, appending an ellipsis
// when anything was cut.
func Snippet(s string, maxRunes int) string {
	text := StripHTML(s)
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + Ellipsis
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
