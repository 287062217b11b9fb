package analyzer

import (
	"fmt"
	"regexp"

	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/pkg/keywords"
	"github.com/nguyentantai21042004/deck-flow/pkg/textnorm"
)

type implAnalyzer struct {
	opts     Options
	norm     textnorm.Normalizer
	keywords keywords.Extractor
	patterns []*regexp.Regexp
	vocab    map[string]struct{}
	logger   logger.Logger
	sem      *semaphore
}

// New creates an Analyzer instance. Invalid options or malformed
// section patterns are rejected here, before any analysis work.
func New(opts Options, log logger.Logger) (Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	norm := textnorm.New(opts.StopWords)

	patterns := []*regexp.Regexp{baseSectionPattern}
	for _, src := range opts.SectionPatterns {
		re, err := regexp.Compile("(?i)" + src)
		if err != nil {
			return nil, fmt.Errorf("%w: section pattern %q: %v", ErrInvalidConfig, src, err)
		}
		patterns = append(patterns, re)
	}

	vocab := make(map[string]struct{}, len(baseSectionVocabulary)+len(opts.SectionVocabulary))
	for _, word := range baseSectionVocabulary {
		vocab[norm.Fold(word)] = struct{}{}
	}
	for _, word := range opts.SectionVocabulary {
		vocab[norm.Fold(word)] = struct{}{}
	}

	return &implAnalyzer{
		opts:     opts,
		norm:     norm,
		keywords: keywords.New(norm),
		patterns: patterns,
		vocab:    vocab,
		logger:   log,
		sem:      newSemaphore(opts.MaxConcurrent),
	}, nil
}
