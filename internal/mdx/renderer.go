package mdx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderOptions control how MDX bodies are converted into HTML.
type RenderOptions struct {
	// Extensions names the goldmark extensions to enable. Defaults to GFM,
	// autolinking, and task lists when empty. Unknown names are ignored.
	Extensions []string
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough in the rendered output.
	SafeMode bool
}

// Renderer converts MDX body text into HTML using the goldmark engine. The
// renderer is stateless so a single instance can be shared across requests
// without locking.
type Renderer struct {
	defaults RenderOptions
}

// NewRenderer constructs a renderer with the supplied default options.
func NewRenderer(defaults RenderOptions) *Renderer {
	return &Renderer{defaults: defaults}
}

// Render converts body into HTML using the renderer defaults.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	return r.RenderWithOptions(body, r.defaults)
}

// RenderWithOptions converts body into HTML using the provided options.
func (r *Renderer) RenderWithOptions(body []byte, opts RenderOptions) ([]byte, error) {
	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("mdx render: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts RenderOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
