// Package markdown renders portfolio item bodies to HTML using goldmark.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown bodies into HTML fragments. The renderer is
// stateless, so a single instance can serve concurrent render passes without
// locking.
type Renderer struct {
	engine goldmark.Markdown
}

// Options tunes the goldmark engine.
type Options struct {
	// HardWraps renders newlines as <br> elements.
	HardWraps bool
	// Unsafe passes raw HTML in the source through to the output. Item
	// bodies are authored by site admins, so this defaults to on at the
	// call sites.
	Unsafe bool
}

// NewRenderer constructs a renderer with GFM extensions enabled.
func NewRenderer(opts Options) *Renderer {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return &Renderer{engine: engine}
}

// Render converts the Markdown source into an HTML fragment.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
