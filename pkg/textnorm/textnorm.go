package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minTokenLen = 3

type implNormalizer struct {
	stopWords map[string]struct{}
}

// New creates a Normalizer. An empty stopWords slice selects the
// built-in stop-word set.
func New(stopWords []string) Normalizer {
	if len(stopWords) == 0 {
		stopWords = defaultStopWords
	}

	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	return &implNormalizer{stopWords: set}
}

func (n *implNormalizer) Tokens(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '\'':
			// Kept so "machine-learning" and "bayes'" survive as one
			// token. Leading/trailing runs are trimmed below.
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	var tokens []string
	for _, raw := range strings.Fields(b.String()) {
		tok := strings.Trim(raw, "-'")
		if utf8.RuneCountInString(tok) < minTokenLen {
			continue
		}
		if _, stop := n.stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

func (n *implNormalizer) Fold(text string) string {
	folded := strings.ToLower(strings.TrimSpace(text))
	folded = strings.TrimRight(folded, ":.!?")
	return strings.Join(strings.Fields(folded), " ")
}
