package analyzer

import (
	"regexp"
	"strings"
)

// Built-in divider detection rules. Options.SectionPatterns and
// Options.SectionVocabulary extend these at construction time.
var (
	baseSectionPattern    = regexp.MustCompile(`(?i)^(chapter|section|part|lesson|module|unit)\b`)
	baseSectionVocabulary = []string{"overview", "introduction", "summary", "conclusion", "agenda"}
)

// Thresholds of the divider rule set.
const (
	dividerMaxBodyLines  = 2 // near-empty body next to a title
	dividerVocabMaxLines = 1 // body allowance for vocabulary titles
	overrideBulletCount  = 4 // substantial content disqualifiers
	overrideParaCount    = 2
)

// isSectionDivider decides whether a slide marks the start of a new
// logical section. It is a pure function of the RawSlide structural
// fields and runs before any slide type is assigned, so the type
// decision table can consume its result without circularity.
func (a *implAnalyzer) isSectionDivider(raw RawSlide) bool {
	title := strings.TrimSpace(raw.TitleCandidate)
	if title == "" {
		return false
	}

	// Substantial content disqualifies a slide no matter what its
	// title says: "Chapter 1" over five bullet points is a content
	// slide, not a boundary.
	if len(raw.Bullets) >= overrideBulletCount || len(raw.Paragraphs) >= overrideParaCount {
		return false
	}

	bodyLines := len(raw.Bullets) + len(raw.Paragraphs)

	if bodyLines <= dividerMaxBodyLines {
		return true
	}

	for _, re := range a.patterns {
		if re.MatchString(title) {
			return true
		}
	}

	if bodyLines <= dividerVocabMaxLines {
		if _, ok := a.vocab[a.norm.Fold(title)]; ok {
			return true
		}
	}

	return false
}
