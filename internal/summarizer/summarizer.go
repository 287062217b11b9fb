package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/deck-flow/internal/analyzer"
)

const summaryPrompt = `You are an expert at describing training material. Below is the automatically derived outline of a slide deck. Rewrite it as ONE flowing paragraph a student would want to read: name the overall subject, walk through the sections in order, and mention the main topics. Do not use bullet points, headings or markdown. Do not invent content that is not in the outline.

Deck: %s
%s`

// Summarize sends the deck outline to Gemini and returns the polished
// paragraph. Callers keep the templated summary when this fails.
func (s *implSummarizer) Summarize(ctx context.Context, deckName string, structure *analyzer.PresentationStructure) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	prompt := fmt.Sprintf(summaryPrompt, deckName, outlineText(structure))

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return strings.TrimSpace(text), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// outlineText flattens the structure into the plain-text outline the
// prompt embeds.
func outlineText(structure *analyzer.PresentationStructure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Slides: %d\n", structure.TotalSlides)
	if len(structure.MainTopics) > 0 {
		fmt.Fprintf(&b, "Main topics: %s\n", strings.Join(structure.MainTopics, ", "))
	}
	for _, section := range structure.Sections {
		fmt.Fprintf(&b, "Section %d: %s (pages %d-%d) - %s\n",
			section.Number, section.Title, section.StartPage, section.EndPage, section.Summary)
	}

	return b.String()
}
