package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cultural-search-api/core/interfaces"
	"golang.org/x/text/unicode/norm"
)

// ReadStopwords parses a stopword dictionary.
// Each non-blank line not starting with '#' holds one or more
// comma-separated stopwords.
func ReadStopwords(r io.Reader) ([]string, error) {
	var words []string
	err := eachEntryLine(r, func(fields []string) {
		words = append(words, fields...)
	})
	return words, err
}

// ReadSynonymGroups parses a synonym dictionary.
// Each non-blank line not starting with '#' is one comma-separated group;
// groups with fewer than two members are skipped.
func ReadSynonymGroups(r io.Reader) ([][]string, error) {
	var groups [][]string
	err := eachEntryLine(r, func(fields []string) {
		if len(fields) > 1 {
			groups = append(groups, fields)
		}
	})
	return groups, err
}

// Load builds a Lexicon from dictionary files. A dictionary whose file is
// missing or unreadable falls back to the built-in defaults; the other
// dictionary is unaffected. An empty path selects the default directly.
func Load(stopwordsPath, synonymsPath string, logger interfaces.Logger) *Lexicon {
	stopwords := DefaultStopwords()
	if words, err := readFile(stopwordsPath, ReadStopwords); err == nil {
		stopwords = words
	} else {
		logFallback(logger, "stopwords", stopwordsPath, err)
	}

	groups := DefaultSynonymGroups()
	if g, err := readFile(synonymsPath, ReadSynonymGroups); err == nil {
		groups = g
	} else {
		logFallback(logger, "synonyms", synonymsPath, err)
	}

	l := New(stopwords, groups)
	if logger != nil {
		logger.Info("Lexicon loaded", map[string]interface{}{
			"stopwords":     l.StopwordCount(),
			"synonym_words": l.SynonymWordCount(),
		})
	}
	return l
}

var errNoPath = errors.New("no dictionary path configured")

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	if path == "" {
		return zero, errNoPath
	}
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return v, nil
}

func logFallback(logger interfaces.Logger, dictionary, path string, err error) {
	if logger == nil {
		return
	}
	fields := map[string]interface{}{
		"dictionary": dictionary,
		"path":       path,
	}
	// a missing file is the documented way to use the defaults
	if errors.Is(err, errNoPath) || errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Dictionary file not found, using defaults", fields)
		return
	}
	fields["error"] = err.Error()
	logger.Warn("Failed to load dictionary, using defaults", fields)
}

// eachEntryLine normalizes each entry line to NFKC, so full-width commas
// separate entries too, and hands the trimmed non-empty fields to fn.
func eachEntryLine(r io.Reader, fn func(fields []string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(norm.NFKC.String(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var fields []string
		for _, f := range strings.Split(line, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) > 0 {
			fn(fields)
		}
	}
	return scanner.Err()
}
