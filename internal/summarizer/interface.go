package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

// Summarizer rewrites the analyzer's templated presentation summary
// into a polished narrative paragraph. It is an optional downstream
// step; the pipeline works without it.
type Summarizer interface {
	Summarize(ctx context.Context, deckName string, structure *analyzer.PresentationStructure) (string, error)
}
