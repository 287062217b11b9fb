package textnorm

// Normalizer turns raw slide text into a clean token stream suitable
// for frequency analysis. Implementations are pure: the same input
// always yields the same tokens.
type Normalizer interface {
	// Tokens lower-cases the text, strips punctuation except intra-word
	// hyphens and apostrophes, splits on whitespace, and drops tokens
	// shorter than three characters or in the stop-word set.
	Tokens(text string) []string

	// Fold canonicalizes a short phrase (title line) for exact-match
	// comparison: lower-case, trimmed, trailing punctuation removed,
	// inner whitespace collapsed.
	Fold(text string) string
}
