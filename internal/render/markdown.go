package render

import (
	"strings"

	"github.com/sandevgo/wikirag/internal/core"
)

const codeFence = "```"

// ToMarkdown converts raw model output to display-ready markdown:
// bullet glyphs become list markers, prose lines become blockquotes,
// fenced code blocks pass through untouched.
//
// A fence line toggles the in-code state even when the closing fence is
// missing; the rest of the input is then treated as code. That matches
// the historical behavior and is deliberate.
func ToMarkdown(text string) string {
	text = strings.ReplaceAll(text, "•", "  * ")

	lines := strings.Split(text, "\n")
	formatted := make([]string, 0, len(lines))
	insideCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, codeFence) {
			insideCodeBlock = !insideCodeBlock
			formatted = append(formatted, line)
			continue
		}

		if insideCodeBlock {
			formatted = append(formatted, line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			// Blank prose lines are dropped
			continue
		}
		formatted = append(formatted, "> "+trimmed)
	}

	return strings.Join(formatted, "\n")
}

// FormatDocs joins the page content of all documents with a double
// newline. Nil or empty input yields an empty string.
func FormatDocs(docs []core.Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.PageContent)
	}
	return strings.Join(parts, "\n\n")
}
