package analyzer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/pkg/keywords"
)

const sectionTopicCount = 3

// sectionDraft is a section under construction during the scan.
type sectionDraft struct {
	title    string
	implicit bool
	slides   []ParsedSlide
}

// assemble partitions the classified slides into sections and derives
// the deck-level aggregates. Slides must already be in page order.
func (a *implAnalyzer) assemble(slides []ParsedSlide) PresentationStructure {
	structure := PresentationStructure{
		TotalSlides:      len(slides),
		Sections:         []Section{},
		KeywordFrequency: map[string]int{},
	}
	if len(slides) == 0 {
		return structure
	}

	drafts := a.partition(slides)

	for i, draft := range drafts {
		structure.Sections = append(structure.Sections, a.buildSection(i+1, draft))
	}

	global := keywords.NewCounter()
	for _, slide := range slides {
		global.AddAll(a.norm.Tokens(parsedSlideText(slide)))
	}
	structure.KeywordFrequency = global.Counts()
	structure.MainTopics = global.Top(1, a.opts.TopicCount)

	structure.Summary = a.presentationSummary(structure)
	return structure
}

// partition walks the slides in page order. Every section_divider
// opens a new section; if the deck does not start with a divider an
// implicit first section opens at the first slide. A leading run of
// title slides is absorbed into the first divider's section instead of
// forming a section of its own.
func (a *implAnalyzer) partition(slides []ParsedSlide) []*sectionDraft {
	var drafts []*sectionDraft
	var current *sectionDraft

	for _, slide := range slides {
		switch {
		case slide.Type == TypeSectionDivider:
			if current != nil && current.implicit && allTitleSlides(current.slides) {
				current.title = slide.Title
				current.implicit = false
			} else {
				current = &sectionDraft{title: slide.Title}
				drafts = append(drafts, current)
			}
		case current == nil:
			current = &sectionDraft{implicit: true}
			drafts = append(drafts, current)
		}
		current.slides = append(current.slides, slide)
	}

	return drafts
}

func allTitleSlides(slides []ParsedSlide) bool {
	for _, s := range slides {
		if s.Type != TypeTitle {
			return false
		}
	}
	return len(slides) > 0
}

// buildSection derives the per-section aggregates: page range,
// frequency-ranked keyword union across member slides, and the
// templated summary line.
func (a *implAnalyzer) buildSection(number int, draft *sectionDraft) Section {
	title := strings.TrimSpace(draft.title)
	if title == "" {
		title = fmt.Sprintf("Section %d", number)
	}

	counter := keywords.NewCounter()
	bulletCount := 0
	for _, slide := range draft.slides {
		counter.AddAll(a.norm.Tokens(parsedSlideText(slide)))
		bulletCount += len(slide.Bullets)
	}
	kws := counter.Top(a.opts.SectionKeywordMinFreq, a.opts.SectionKeywordMax)

	topics := kws
	if len(topics) > sectionTopicCount {
		topics = topics[:sectionTopicCount]
	}
	topicList := "n/a"
	if len(topics) > 0 {
		topicList = strings.Join(topics, ", ")
	}

	return Section{
		Number:    number,
		Title:     title,
		StartPage: draft.slides[0].PageNumber,
		EndPage:   draft.slides[len(draft.slides)-1].PageNumber,
		Slides:    draft.slides,
		Keywords:  kws,
		Summary: fmt.Sprintf("Contains %d slides | %d bullet points | Key topics: %s",
			len(draft.slides), bulletCount, topicList),
	}
}

// presentationSummary renders the one-paragraph deck overview.
func (a *implAnalyzer) presentationSummary(structure PresentationStructure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The presentation contains %d slides organized into %d sections.",
		structure.TotalSlides, len(structure.Sections))

	if len(structure.Sections) > 0 {
		titles := make([]string, 0, len(structure.Sections))
		for _, s := range structure.Sections {
			titles = append(titles, fmt.Sprintf("%s (pages %d-%d)", s.Title, s.StartPage, s.EndPage))
		}
		fmt.Fprintf(&b, " Sections: %s.", strings.Join(titles, "; "))
	}

	if len(structure.MainTopics) > 0 {
		fmt.Fprintf(&b, " Main topics: %s.", strings.Join(structure.MainTopics, ", "))
	}

	return b.String()
}

// parsedSlideText reconstructs the same concatenation the classifier
// fed to the keyword extractor, so section and deck level counts stay
// consistent with slide level keywords.
func parsedSlideText(slide ParsedSlide) string {
	parts := make([]string, 0, 1+len(slide.Bullets)+len(slide.Paragraphs))
	if slide.Title != "" {
		parts = append(parts, slide.Title)
	}
	parts = append(parts, slide.Bullets...)
	parts = append(parts, slide.Paragraphs...)
	return strings.Join(parts, "\n")
}
