package analyzer

import "fmt"

// Options tunes the analyzer. The vocabulary fields extend (never
// replace) the built-in section detection rules, so callers can add
// domain-specific section keywords without touching the algorithm.
// Options are copied at construction time; a configured analyzer holds
// no shared mutable state and instances with different vocabularies
// can run concurrently.
type Options struct {
	// StopWords replaces the default stop-word set when non-empty.
	StopWords []string

	// SectionPatterns are extra regular expressions (matched
	// case-insensitively against the title candidate) that mark a
	// slide as a section divider.
	SectionPatterns []string

	// SectionVocabulary are extra exact divider titles, compared after
	// normalization.
	SectionVocabulary []string

	SlideKeywordMax       int
	SectionKeywordMax     int
	SectionKeywordMinFreq int
	TopicCount            int

	// MaxConcurrent bounds the classification fan-out. Assembly is
	// always sequential in page order.
	MaxConcurrent int
}

// Validate applies defaults and rejects out-of-range values.
func (o *Options) Validate() error {
	if o.SlideKeywordMax == 0 {
		o.SlideKeywordMax = 8
	}
	if o.SectionKeywordMax == 0 {
		o.SectionKeywordMax = 15
	}
	if o.SectionKeywordMinFreq == 0 {
		o.SectionKeywordMinFreq = 2
	}
	if o.TopicCount == 0 {
		o.TopicCount = 5
	}
	if o.MaxConcurrent == 0 {
		o.MaxConcurrent = 2
	}

	if o.SlideKeywordMax < 0 {
		return fmt.Errorf("%w: slide_keyword_max must be > 0", ErrInvalidConfig)
	}
	if o.SectionKeywordMax < 0 {
		return fmt.Errorf("%w: section_keyword_max must be > 0", ErrInvalidConfig)
	}
	if o.SectionKeywordMinFreq < 0 {
		return fmt.Errorf("%w: section_keyword_min_freq must be >= 0", ErrInvalidConfig)
	}
	if o.TopicCount < 0 {
		return fmt.Errorf("%w: topic_count must be > 0", ErrInvalidConfig)
	}
	if o.MaxConcurrent < 0 {
		return fmt.Errorf("%w: max_concurrent must be > 0", ErrInvalidConfig)
	}

	return nil
}
