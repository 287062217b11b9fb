package textnorm

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	norm := New(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits",
			text: "Machine Learning Basics",
			want: []string{"machine", "learning", "basics"},
		},
		{
			name: "strips punctuation",
			text: "Chapter 1: Introduction!",
			want: []string{"chapter", "introduction"},
		},
		{
			name: "keeps intra-word hyphen and apostrophe",
			text: "state-of-the-art Bayes' theorem",
			want: []string{"state-of-the-art", "bayes", "theorem"},
		},
		{
			name: "drops short tokens",
			text: "go ml ai deep nets",
			want: []string{"deep", "nets"},
		},
		{
			name: "drops stop words",
			text: "the model and the data are ready",
			want: []string{"model", "data", "ready"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "only stop words",
			text: "and the was were",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := norm.Tokens(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokensDeterministic(t *testing.T) {
	norm := New(nil)
	text := "neural networks neural networks gradient descent"

	first := norm.Tokens(text)
	second := norm.Tokens(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokens() not deterministic: %v vs %v", first, second)
	}
}

func TestCustomStopWords(t *testing.T) {
	norm := New([]string{"slide", "course"})

	got := norm.Tokens("the slide about course design")
	// "the" is no longer filtered because the custom set replaces the default.
	want := []string{"the", "about", "design"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

func TestFold(t *testing.T) {
	norm := New(nil)

	tests := []struct {
		text string
		want string
	}{
		{"  Overview  ", "overview"},
		{"Conclusion!", "conclusion"},
		{"Agenda:", "agenda"},
		{"Key   Points", "key points"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := norm.Fold(tt.text); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
