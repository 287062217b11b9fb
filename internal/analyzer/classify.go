package analyzer

import (
	"math"
	"regexp"
	"strings"
)

// summaryTitlePattern marks wrap-up slides by their title.
var summaryTitlePattern = regexp.MustCompile(`(?i)\b(summary|conclusion|recap|takeaways|key points)\b`)

// Importance score weights. Each term is additive and independently
// capped, so adding bullets or paragraphs never lowers the score.
const (
	titleWeight     = 0.3
	bulletWeight    = 0.1
	bulletCap       = 0.4
	paragraphWeight = 0.05
	paragraphCap    = 0.2
	structureBonus  = 0.2 // title and section_divider slides
)

// slideFacts are the precomputed predicates one slide is judged on.
// The divider flag is resolved first, from raw structural fields only.
type slideFacts struct {
	raw       RawSlide
	hasTitle  bool
	bodyLines int
	isDivider bool
	isLast    bool
}

// classRule is one entry of the priority-ordered decision table. The
// first matching rule assigns the slide type.
type classRule struct {
	label SlideType
	match func(f slideFacts) bool
}

var classRules = []classRule{
	{TypeTitle, func(f slideFacts) bool {
		return f.raw.PageNumber == 1 && f.bodyLines <= 1 && f.hasTitle
	}},
	{TypeSectionDivider, func(f slideFacts) bool {
		return f.isDivider
	}},
	{TypeSummary, func(f slideFacts) bool {
		return summaryTitlePattern.MatchString(f.raw.TitleCandidate) ||
			(f.isLast && f.bodyLines < 3)
	}},
	{TypeContent, func(f slideFacts) bool {
		return f.bodyLines > 0
	}},
	{TypeOther, func(f slideFacts) bool {
		return true
	}},
}

// classify turns one RawSlide into its ParsedSlide. lastPage is the
// final page number of the deck, needed by the summary rule.
func (a *implAnalyzer) classify(raw RawSlide, lastPage int) (ParsedSlide, error) {
	title := strings.TrimSpace(raw.TitleCandidate)

	facts := slideFacts{
		raw:       raw,
		hasTitle:  title != "",
		bodyLines: len(raw.Bullets) + len(raw.Paragraphs),
		isDivider: a.isSectionDivider(raw),
		isLast:    raw.PageNumber == lastPage,
	}

	slideType := TypeOther
	for _, rule := range classRules {
		if rule.match(facts) {
			slideType = rule.label
			break
		}
	}

	kws, err := a.keywords.Extract(slideText(raw), 1, a.opts.SlideKeywordMax)
	if err != nil {
		return ParsedSlide{}, err
	}

	return ParsedSlide{
		PageNumber: raw.PageNumber,
		Title:      title,
		Type:       slideType,
		Importance: importanceScore(raw, slideType, facts.hasTitle),
		Bullets:    raw.Bullets,
		Paragraphs: raw.Paragraphs,
		Keywords:   kws,
	}, nil
}

// importanceScore is a [0,1] heuristic of how content-rich and
// structurally significant a slide is.
func importanceScore(raw RawSlide, slideType SlideType, hasTitle bool) float64 {
	score := 0.0
	if hasTitle {
		score += titleWeight
	}
	score += math.Min(float64(len(raw.Bullets))*bulletWeight, bulletCap)
	score += math.Min(float64(len(raw.Paragraphs))*paragraphWeight, paragraphCap)
	if slideType == TypeSectionDivider || slideType == TypeTitle {
		score += structureBonus
	}
	return math.Min(score, 1.0)
}

// slideText concatenates the text the keyword extractor sees for one
// slide: title, bullets, then paragraphs.
func slideText(raw RawSlide) string {
	parts := make([]string, 0, 1+len(raw.Bullets)+len(raw.Paragraphs))
	if raw.TitleCandidate != "" {
		parts = append(parts, raw.TitleCandidate)
	}
	parts = append(parts, raw.Bullets...)
	parts = append(parts, raw.Paragraphs...)
	return strings.Join(parts, "\n")
}
