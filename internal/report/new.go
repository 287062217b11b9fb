package report

import (
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

type implWriter struct {
	outputDir string
	logger    logger.Logger
}

// New creates a Writer that places files in outputDir.
func New(outputDir string, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		logger:    log,
	}
}
