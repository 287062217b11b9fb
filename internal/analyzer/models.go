package analyzer

// SlideType classifies the structural role of a single slide.
type SlideType string

const (
	TypeTitle          SlideType = "title"
	TypeSectionDivider SlideType = "section_divider"
	TypeContent        SlideType = "content"
	TypeSummary        SlideType = "summary"
	TypeOther          SlideType = "other"
)

// RawSlide is one extracted slide as delivered by the upstream text
// extraction step: 1-based page number, an optional title-line
// candidate (first short non-bullet line) and the ordered bullet and
// paragraph lines. It is never mutated after creation.
type RawSlide struct {
	PageNumber     int      `json:"page_number"`
	Text           string   `json:"text,omitempty"`
	TitleCandidate string   `json:"title_candidate,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
	Paragraphs     []string `json:"paragraphs,omitempty"`
}

// ParsedSlide is the classified form of a RawSlide.
type ParsedSlide struct {
	PageNumber int       `json:"page_number"`
	Title      string    `json:"title,omitempty"`
	Type       SlideType `json:"slide_type"`
	Importance float64   `json:"importance_score"`
	Bullets    []string  `json:"bullets,omitempty"`
	Paragraphs []string  `json:"paragraphs,omitempty"`
	Keywords   []string  `json:"keywords,omitempty"`
}

// Section is a contiguous run of slides sharing one topical heading.
// Sections partition the slide sequence exactly: every slide belongs
// to one section, sections are ordered and non-overlapping.
type Section struct {
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	StartPage int           `json:"start_page"`
	EndPage   int           `json:"end_page"`
	Slides    []ParsedSlide `json:"slides"`
	Keywords  []string      `json:"keywords,omitempty"`
	Summary   string        `json:"summary"`
}

// PresentationStructure is the assembled deck-level output.
type PresentationStructure struct {
	TotalSlides      int            `json:"total_slides"`
	Sections         []Section      `json:"sections"`
	KeywordFrequency map[string]int `json:"keyword_frequency"`
	MainTopics       []string       `json:"main_topics,omitempty"`
	Summary          string         `json:"summary"`
}

// Result bundles the structure with the full ordered slide list so
// downstream consumers (report writer, JSON export) get both.
type Result struct {
	Structure PresentationStructure `json:"structure"`
	Slides    []ParsedSlide         `json:"slides"`
}
