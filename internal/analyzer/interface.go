package analyzer

import "context"

// Analyzer reconstructs a navigable document structure from an ordered
// sequence of raw slide extracts: per-slide classification and
// keywords, plus a partition of the deck into titled sections.
type Analyzer interface {
	Analyze(ctx context.Context, slides []RawSlide) (*Result, error)
}
