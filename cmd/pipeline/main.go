package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/extractor"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/internal/processor"
	"github.com/nguyentantai21042004/deck-flow/internal/report"
	"github.com/nguyentantai21042004/deck-flow/internal/summarizer"
	"github.com/nguyentantai21042004/deck-flow/internal/watcher"
	"github.com/nguyentantai21042004/deck-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Deck Structure Analysis Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	ext := extractor.New(cfg, exec, log)

	an, err := analyzer.New(analyzer.Options{
		StopWords:             cfg.Analyzer.StopWords,
		SectionPatterns:       cfg.Analyzer.SectionPatterns,
		SectionVocabulary:     cfg.Analyzer.SectionVocabulary,
		SlideKeywordMax:       cfg.Analyzer.SlideKeywordMax,
		SectionKeywordMax:     cfg.Analyzer.SectionKeywordMax,
		SectionKeywordMinFreq: cfg.Analyzer.SectionKeywordMinFreq,
		TopicCount:            cfg.Analyzer.TopicCount,
		MaxConcurrent:         cfg.Performance.MaxConcurrent,
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to create analyzer: %v", err)
		os.Exit(1)
	}

	rep := report.New(cfg.Paths.Output, log)

	var sum summarizer.Summarizer
	if len(cfg.Gemini.APIKeys) > 0 {
		sum = summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
		log.Info(ctx, "Gemini summary polish enabled (%d keys)", len(cfg.Gemini.APIKeys))
	} else {
		log.Info(ctx, "Gemini summary polish disabled (no GEMINI_API_KEYS)")
	}

	proc := processor.New(cfg, ext, an, rep, sum, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Deck Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Deck Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
