package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/pkg/executor"
)

func newTestExtractor() Extractor {
	cfg := &config.Config{}
	return New(cfg, executor.New(), logger.New("error"))
}

func TestExtractJSONStructured(t *testing.T) {
	deck := `[
		{"page_number": 1, "title_candidate": "ML Course"},
		{"page_number": 2, "title_candidate": "Chapter 1", "bullets": ["intro point"]}
	]`

	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(deck), 0644); err != nil {
		t.Fatal(err)
	}

	slides, err := newTestExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	if slides[0].TitleCandidate != "ML Course" {
		t.Errorf("slide 1 title = %q", slides[0].TitleCandidate)
	}
	if len(slides[1].Bullets) != 1 || slides[1].Bullets[0] != "intro point" {
		t.Errorf("slide 2 bullets = %v", slides[1].Bullets)
	}
}

func TestExtractJSONRawText(t *testing.T) {
	deck := `[
		{"page_number": 1, "text": "Deep Learning\n• backprop\n• optimizers\nA paragraph line here."}
	]`

	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(deck), 0644); err != nil {
		t.Fatal(err)
	}

	slides, err := newTestExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(slides))
	}
	slide := slides[0]
	if slide.TitleCandidate != "Deep Learning" {
		t.Errorf("title = %q", slide.TitleCandidate)
	}
	if len(slide.Bullets) != 2 {
		t.Errorf("bullets = %v", slide.Bullets)
	}
	if len(slide.Paragraphs) != 1 {
		t.Errorf("paragraphs = %v", slide.Paragraphs)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := newTestExtractor().Extract(context.Background(), "deck.pptx")
	if err == nil {
		t.Error("Extract() should reject unsupported formats")
	}
}

func TestExtractPDFWithoutBinary(t *testing.T) {
	_, err := newTestExtractor().Extract(context.Background(), "deck.pdf")
	if err == nil {
		t.Error("Extract() should fail when extractor.binary_path is unset")
	}
}
