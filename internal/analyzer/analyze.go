package analyzer

import (
	"context"
	"fmt"
	"sync"
)

// Analyze classifies every slide and assembles the section structure.
// Classification fans out across slides (bounded by MaxConcurrent)
// because slides are independent of each other; results land at fixed
// indices so the output is deterministic. Assembly then runs
// sequentially over the page-ordered slice.
func (a *implAnalyzer) Analyze(ctx context.Context, slides []RawSlide) (*Result, error) {
	if err := validateSequence(slides); err != nil {
		return nil, err
	}

	if len(slides) == 0 {
		return &Result{Structure: a.assemble(nil), Slides: []ParsedSlide{}}, nil
	}

	lastPage := slides[len(slides)-1].PageNumber

	parsed := make([]ParsedSlide, len(slides))
	errs := make([]error, len(slides))

	var wg sync.WaitGroup
	for i := range slides {
		if err := a.sem.acquire(ctx); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer a.sem.release()
			parsed[i], errs[i] = a.classify(slides[i], lastPage)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("classify slides: %w", err)
		}
	}

	if a.logger != nil {
		for _, p := range parsed {
			a.logger.Debug(ctx, "Slide %d: type=%s score=%.2f keywords=%d",
				p.PageNumber, p.Type, p.Importance, len(p.Keywords))
		}
	}

	structure := a.assemble(parsed)
	return &Result{Structure: structure, Slides: parsed}, nil
}

// validateSequence rejects malformed input before any classification:
// page numbers must be 1-based and strictly increasing.
func validateSequence(slides []RawSlide) error {
	prev := 0
	for i, s := range slides {
		if s.PageNumber < 1 {
			return fmt.Errorf("%w: slide %d has page number %d, want >= 1", ErrInvalidInput, i, s.PageNumber)
		}
		if s.PageNumber <= prev {
			return fmt.Errorf("%w: page number %d at index %d is not strictly increasing", ErrInvalidInput, s.PageNumber, i)
		}
		prev = s.PageNumber
	}
	return nil
}
