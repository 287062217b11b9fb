package report

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	titleSize   = 16
	sectionSize = 15
	slideSize   = 14
)

// WriteDocx renders the presentation structure into a styled report:
// deck overview, then one block per section with its member slides.
func (w *implWriter) WriteDocx(ctx context.Context, deckName string, res *analyzer.Result) (string, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), deckName, true, titleSize)
	addStyledRun(doc.AddParagraph(""), res.Structure.Summary, false, fontSize)

	if len(res.Structure.MainTopics) > 0 {
		addStyledRun(doc.AddParagraph(""),
			"Main topics: "+strings.Join(res.Structure.MainTopics, ", "), false, fontSize)
	}

	for _, section := range res.Structure.Sections {
		doc.AddParagraph("")
		heading := fmt.Sprintf("%d. %s (pages %d-%d)",
			section.Number, section.Title, section.StartPage, section.EndPage)
		addStyledRun(doc.AddParagraph(""), heading, true, sectionSize)
		addStyledRun(doc.AddParagraph(""), section.Summary, false, fontSize)

		for _, slide := range section.Slides {
			if slide.Title != "" {
				addStyledRun(doc.AddParagraph(""),
					fmt.Sprintf("Slide %d: %s", slide.PageNumber, slide.Title), true, slideSize)
			} else {
				addStyledRun(doc.AddParagraph(""),
					fmt.Sprintf("Slide %d", slide.PageNumber), true, slideSize)
			}
			for _, bullet := range slide.Bullets {
				addStyledRun(doc.AddParagraph(""), "• "+bullet, false, fontSize)
			}
			for _, para := range slide.Paragraphs {
				addStyledRun(doc.AddParagraph(""), para, false, fontSize)
			}
		}
	}

	path := filepath.Join(w.outputDir, deckName+".docx")
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	w.logger.Info(ctx, "Report written: %s", path)
	return path, nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
