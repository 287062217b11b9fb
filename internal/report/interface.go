package report

import (
	"context"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

// Writer persists an analysis result for downstream consumers: a JSON
// document for machine use and a DOCX report for humans. Both methods
// return the path of the written file.
type Writer interface {
	WriteJSON(ctx context.Context, deckName string, res *analyzer.Result) (string, error)
	WriteDocx(ctx context.Context, deckName string, res *analyzer.Result) (string, error)
}
