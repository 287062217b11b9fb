package extractor

import (
	"context"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

// Extractor turns an input deck file into the ordered RawSlide
// sequence the analyzer consumes. PDF decks go through the configured
// external page-text tool; JSON decks are read directly.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]analyzer.RawSlide, error)
}
