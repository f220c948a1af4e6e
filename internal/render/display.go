package render

import (
	"fmt"
	"io"
)

// Displayer is the sink formatted markup is written to. MarkdownWriter
// emits the markdown as-is; HTMLRenderer renders it to sanitized HTML.
type Displayer interface {
	Display(markdown string) error
}

// MarkdownWriter writes formatted markdown to an io.Writer, one block
// per Display call.
type MarkdownWriter struct {
	w io.Writer
}

func NewMarkdownWriter(w io.Writer) *MarkdownWriter {
	return &MarkdownWriter{w: w}
}

func (m *MarkdownWriter) Display(markdown string) error {
	_, err := fmt.Fprintln(m.w, markdown)
	return err
}

// DisplayAnswer shows the question as a header followed by the answer,
// both passed through ToMarkdown.
func DisplayAnswer(d Displayer, question, answer string) error {
	if err := d.Display(ToMarkdown("#### " + question)); err != nil {
		return err
	}
	return d.Display(ToMarkdown(answer))
}
