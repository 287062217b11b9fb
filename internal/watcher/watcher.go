package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

// settleDelay gives the writer time to finish before a new file is
// handed to the processor.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start processes decks already sitting in the input directory, then
// monitors it for new ones.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: .pdf, .json")

	if err := w.processExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create == fsnotify.Create {
				if w.isDeckFile(event.Name) {
					w.logger.Info(ctx, "New deck detected: %s", event.Name)

					time.Sleep(settleDelay)

					if err := w.dispatch(ctx, event.Name); err != nil {
						return err
					}
				} else {
					w.logger.Debug(ctx, "Ignoring non-deck file: %s", event.Name)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// processExisting picks up deck files that arrived while the pipeline
// was down.
func (w *implWatcher) processExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.inputDir, entry.Name())
		if !w.isDeckFile(path) {
			continue
		}
		w.logger.Info(ctx, "Existing deck found: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}

	return nil
}

// dispatch runs the handler in a goroutine once a semaphore slot is
// available.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func(filePath string) {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
			}
		}(path)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isDeckFile checks if the file has a supported deck extension
func (w *implWatcher) isDeckFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".json":
		return true
	}
	return false
}
