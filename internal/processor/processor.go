package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Process runs the full analysis pipeline for one deck file:
// extraction, structure analysis, report writing, archiving.
func (p *implProcessor) Process(ctx context.Context, deckPath string) error {
	startTime := time.Now()
	deckName := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting deck processing: %s", deckPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract raw slides
	slides, err := p.extractor.Extract(ctx, deckPath)
	if err != nil {
		return fmt.Errorf("extract slides: %w", err)
	}

	// Step 2: Analyze structure
	res, err := p.analyzer.Analyze(ctx, slides)
	if err != nil {
		return fmt.Errorf("analyze deck: %w", err)
	}
	p.logger.Info(ctx, "Analyzed %d slides into %d sections",
		res.Structure.TotalSlides, len(res.Structure.Sections))

	// Step 3: Optionally polish the presentation summary
	if p.summarizer != nil {
		polished, err := p.summarizer.Summarize(ctx, deckName, &res.Structure)
		if err != nil {
			p.logger.Warn(ctx, "Summary polish failed, keeping templated summary: %v", err)
		} else if polished != "" {
			res.Structure.Summary = polished
		}
	}

	// Step 4: Write outputs
	jsonPath, err := p.report.WriteJSON(ctx, deckName, res)
	if err != nil {
		return fmt.Errorf("write structure: %w", err)
	}

	docxPath, err := p.report.WriteDocx(ctx, deckName, res)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	// Step 5: Move original deck to archived folder
	if err := p.moveToArchived(ctx, deckPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Structure: %s", jsonPath)
	p.logger.Info(ctx, "Report: %s", docxPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}
