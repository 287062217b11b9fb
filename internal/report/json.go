package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

// document is the serialized analysis result. The ID makes reruns of
// the same deck distinguishable downstream.
type document struct {
	ID          string                         `json:"id"`
	SourceName  string                         `json:"source_name"`
	GeneratedAt time.Time                      `json:"generated_at"`
	Structure   analyzer.PresentationStructure `json:"structure"`
	Slides      []analyzer.ParsedSlide         `json:"slides"`
}

func (w *implWriter) WriteJSON(ctx context.Context, deckName string, res *analyzer.Result) (string, error) {
	doc := document{
		ID:          uuid.NewString(),
		SourceName:  deckName,
		GeneratedAt: time.Now().UTC(),
		Structure:   res.Structure,
		Slides:      res.Slides,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal structure: %w", err)
	}

	path := filepath.Join(w.outputDir, deckName+".structure.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write structure file: %w", err)
	}

	w.logger.Info(ctx, "Structure written: %s", path)
	return path, nil
}
