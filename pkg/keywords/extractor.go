package keywords

import (
	"fmt"

	"github.com/nguyentantai21042004/deck-flow/pkg/textnorm"
)

type implExtractor struct {
	norm textnorm.Normalizer
}

// New creates an Extractor backed by the given Normalizer.
func New(norm textnorm.Normalizer) Extractor {
	return &implExtractor{norm: norm}
}

func (e *implExtractor) Extract(text string, minFreq, maxKeywords int) ([]string, error) {
	if minFreq < 0 {
		return nil, fmt.Errorf("%w: min_freq must be >= 0, got %d", ErrInvalidThreshold, minFreq)
	}
	if maxKeywords <= 0 {
		return nil, fmt.Errorf("%w: max_keywords must be > 0, got %d", ErrInvalidThreshold, maxKeywords)
	}

	tokens := e.norm.Tokens(text)
	if len(tokens) == 0 {
		return []string{}, nil
	}

	counter := NewCounter()
	counter.AddAll(tokens)

	return counter.Top(minFreq, maxKeywords), nil
}
