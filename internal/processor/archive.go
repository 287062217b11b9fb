package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToArchived moves a processed deck out of the input folder so the
// watcher never picks it up again. A timestamp suffix resolves name
// collisions with earlier runs.
func (p *implProcessor) moveToArchived(ctx context.Context, deckPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	filename := filepath.Base(deckPath)
	destPath := filepath.Join(p.cfg.Paths.Archived, filename)

	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(filename)
		base := strings.TrimSuffix(filename, ext)
		destPath = filepath.Join(p.cfg.Paths.Archived,
			fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
	}

	if err := os.Rename(deckPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Info(ctx, "Archived original deck: %s", destPath)
	return nil
}
