package analyzer

import (
	"errors"
	"testing"
)

func newTestAnalyzer(t *testing.T, opts Options) *implAnalyzer {
	t.Helper()
	a, err := New(opts, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a.(*implAnalyzer)
}

func TestIsSectionDivider(t *testing.T) {
	a := newTestAnalyzer(t, Options{})

	tests := []struct {
		name  string
		slide RawSlide
		want  bool
	}{
		{
			name:  "title with empty body",
			slide: RawSlide{PageNumber: 2, TitleCandidate: "Getting Started"},
			want:  true,
		},
		{
			name:  "title with near-empty body",
			slide: RawSlide{PageNumber: 2, TitleCandidate: "Getting Started", Bullets: []string{"a", "b"}},
			want:  true,
		},
		{
			name: "chapter pattern with moderate body",
			slide: RawSlide{
				PageNumber:     5,
				TitleCandidate: "Chapter 2: Supervised Learning",
				Bullets:        []string{"a", "b", "c"},
			},
			want: true,
		},
		{
			name:  "no title candidate",
			slide: RawSlide{PageNumber: 3, Bullets: []string{"a"}},
			want:  false,
		},
		{
			name: "pattern match overridden by bullet count",
			slide: RawSlide{
				PageNumber:     4,
				TitleCandidate: "Chapter 1: Introduction",
				Bullets:        []string{"a", "b", "c", "d", "e"},
			},
			want: false,
		},
		{
			name: "pattern match overridden by paragraph count",
			slide: RawSlide{
				PageNumber:     4,
				TitleCandidate: "Section 3",
				Paragraphs:     []string{"first paragraph", "second paragraph"},
			},
			want: false,
		},
		{
			name:  "vocabulary title",
			slide: RawSlide{PageNumber: 6, TitleCandidate: "Agenda"},
			want:  true,
		},
		{
			name: "dense content with plain title",
			slide: RawSlide{
				PageNumber:     7,
				TitleCandidate: "Feature Engineering",
				Bullets:        []string{"a", "b", "c"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.isSectionDivider(tt.slide); got != tt.want {
				t.Errorf("isSectionDivider() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSectionDividerCustomVocabulary(t *testing.T) {
	a := newTestAnalyzer(t, Options{
		SectionVocabulary: []string{"Sommaire"},
		SectionPatterns:   []string{`^leçon\b`},
	})

	tests := []struct {
		name  string
		slide RawSlide
		want  bool
	}{
		{
			name:  "custom vocabulary word",
			slide: RawSlide{PageNumber: 2, TitleCandidate: "Sommaire", Bullets: []string{"a", "b", "c"}},
			want:  false, // vocabulary requires a near-empty body
		},
		{
			name:  "custom vocabulary word with empty body",
			slide: RawSlide{PageNumber: 2, TitleCandidate: "Sommaire:"},
			want:  true,
		},
		{
			name:  "custom pattern",
			slide: RawSlide{PageNumber: 3, TitleCandidate: "Leçon 4: Révision", Bullets: []string{"a", "b", "c"}},
			want:  true,
		},
		{
			name:  "built-in rules still apply",
			slide: RawSlide{PageNumber: 4, TitleCandidate: "Chapter 9", Bullets: []string{"a", "b", "c"}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.isSectionDivider(tt.slide); got != tt.want {
				t.Errorf("isSectionDivider() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSectionDividerInvalidPattern(t *testing.T) {
	_, err := New(Options{SectionPatterns: []string{"("}}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative slide keyword max", Options{SlideKeywordMax: -1}},
		{"negative section keyword max", Options{SectionKeywordMax: -3}},
		{"negative min freq", Options{SectionKeywordMinFreq: -1}},
		{"negative topic count", Options{TopicCount: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts, nil); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
