package keywords

// Extractor computes frequency-ranked significant terms from text.
type Extractor interface {
	// Extract tokenizes text, counts term frequency, keeps terms with
	// frequency >= minFreq, ranks by descending frequency with ties
	// broken by first occurrence, and truncates to maxKeywords. Empty
	// or all-stopword text yields an empty list, not an error.
	Extract(text string, minFreq, maxKeywords int) ([]string, error)
}
