package processor

import "context"

// Processor defines the interface for deck processing operations
type Processor interface {
	Process(ctx context.Context, deckPath string) error
}
