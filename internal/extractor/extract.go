package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

// Extract dispatches on the file extension.
func (e *implExtractor) Extract(ctx context.Context, path string) ([]analyzer.RawSlide, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return e.extractJSON(ctx, path)
	case ".pdf":
		return e.extractPDF(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported deck format: %s", path)
	}
}

// extractJSON reads a pre-extracted deck. Slides that carry only a
// raw text blob get their title candidate, bullets and paragraphs
// derived here; slides that are already structured pass through.
func (e *implExtractor) extractJSON(ctx context.Context, path string) ([]analyzer.RawSlide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}

	var pages []struct {
		PageNumber     int      `json:"page_number"`
		Text           string   `json:"text"`
		TitleCandidate string   `json:"title_candidate"`
		Bullets        []string `json:"bullets"`
		Paragraphs     []string `json:"paragraphs"`
	}
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("parse deck file: %w", err)
	}

	slides := make([]analyzer.RawSlide, 0, len(pages))
	for _, page := range pages {
		slide := analyzer.RawSlide{
			PageNumber:     page.PageNumber,
			Text:           page.Text,
			TitleCandidate: page.TitleCandidate,
			Bullets:        page.Bullets,
			Paragraphs:     page.Paragraphs,
		}
		if slide.TitleCandidate == "" && len(slide.Bullets) == 0 && len(slide.Paragraphs) == 0 {
			slide.TitleCandidate, slide.Bullets, slide.Paragraphs = splitSlideText(page.Text)
		}
		slides = append(slides, slide)
	}

	e.logger.Info(ctx, "Extracted %d slides from JSON deck: %s", len(slides), path)
	return slides, nil
}

// extractPDF shells out to the configured text extraction tool. The
// tool must print page text to stdout with pages separated by form
// feeds (the pdftotext convention).
func (e *implExtractor) extractPDF(ctx context.Context, path string) ([]analyzer.RawSlide, error) {
	if e.cfg.Extractor.BinaryPath == "" {
		return nil, fmt.Errorf("extractor.binary_path is not configured, cannot process %s", path)
	}

	args := append([]string{}, e.cfg.Extractor.Args...)
	args = append(args, path, "-")

	out, err := e.executor.Execute(ctx, e.cfg.Extractor.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("run text extractor: %w", err)
	}

	pages := strings.Split(out, "\f")

	var slides []analyzer.RawSlide
	for i, pageText := range pages {
		if i == len(pages)-1 && strings.TrimSpace(pageText) == "" {
			// Trailing form feed after the last page.
			continue
		}
		title, bullets, paragraphs := splitSlideText(pageText)
		slides = append(slides, analyzer.RawSlide{
			PageNumber:     i + 1,
			Text:           strings.TrimSpace(pageText),
			TitleCandidate: title,
			Bullets:        bullets,
			Paragraphs:     paragraphs,
		})
	}

	e.logger.Info(ctx, "Extracted %d slides from PDF deck: %s", len(slides), path)
	return slides, nil
}
