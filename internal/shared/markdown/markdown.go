// Package markdown renders product descriptions to HTML.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
)

type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Render converts markdown to HTML. On conversion failure the raw text is
// returned so the page still shows something.
func (r *Renderer) Render(content string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return content
	}
	return buf.String()
}
