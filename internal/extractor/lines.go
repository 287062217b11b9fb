package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxTitleLen caps how long the first line may be and still count as a
// title candidate.
const maxTitleLen = 100

// bulletLinePattern recognizes bullet glyphs, dash/asterisk markers,
// and numbered or lettered list items.
var bulletLinePattern = regexp.MustCompile(`^\s*(?:[•·▪▫▸▹►▻⁃‣]|[-*]|\d+[.)]|[a-zA-Z][.)])\s+(.+)$`)

// splitSlideText derives the RawSlide structural fields from one
// page's plain text: the first short non-bullet line becomes the title
// candidate, bullet-marked lines become bullets, every other non-empty
// line becomes a paragraph line.
func splitSlideText(text string) (title string, bullets, paragraphs []string) {
	firstContentLine := true

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := bulletLinePattern.FindStringSubmatch(line); m != nil {
			bullets = append(bullets, strings.TrimSpace(m[1]))
			firstContentLine = false
			continue
		}

		if firstContentLine && utf8.RuneCountInString(line) <= maxTitleLen {
			title = line
			firstContentLine = false
			continue
		}

		paragraphs = append(paragraphs, line)
		firstContentLine = false
	}

	return title, bullets, paragraphs
}
