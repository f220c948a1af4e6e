package render

import (
	"fmt"
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	htmlPolicy = bluemonday.NewPolicy()
)

func init() {
	// Roughly what a notebook output cell accepts
	htmlPolicy.AllowElements(
		"b", "strong", "i", "em", "u", "s", "del", "code", "pre",
		"blockquote", "p", "ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)
	htmlPolicy.AllowAttrs("href").OnElements("a")
	htmlPolicy.AllowAttrs("class").OnElements("code")
}

// MarkdownToHTML renders markdown to sanitized HTML.
func MarkdownToHTML(md []byte) string {
	// 1. Render HTML
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	// 2. Sanitize tags
	sanitized := htmlPolicy.SanitizeBytes(unsafeHTML)

	return string(sanitized)
}

// HTMLRenderer renders markdown blocks to sanitized HTML on an
// io.Writer, the stand-in for a notebook display cell.
type HTMLRenderer struct {
	w io.Writer
}

func NewHTMLRenderer(w io.Writer) *HTMLRenderer {
	return &HTMLRenderer{w: w}
}

func (h *HTMLRenderer) Display(md string) error {
	_, err := fmt.Fprintln(h.w, MarkdownToHTML([]byte(md)))
	return err
}
