package processor

import (
	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/extractor"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/internal/report"
	"github.com/nguyentantai21042004/deck-flow/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	analyzer   analyzer.Analyzer
	report     report.Writer
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Processor instance. sum may be nil; the templated
// summary is kept as-is in that case.
func New(cfg *config.Config, ext extractor.Extractor, an analyzer.Analyzer, rep report.Writer, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		extractor:  ext,
		analyzer:   an,
		report:     rep,
		summarizer: sum,
		logger:     log,
	}
}
