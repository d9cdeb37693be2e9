package pipeline

import (
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser parses Markdown into a goldmark tree with GFM extensions
// (tables, strikethrough, autolinks, task lists). Rendering is done
// separately by walking the tree.
type MarkdownParser struct {
	md goldmark.Markdown
}

// NewMarkdownParser creates a MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return &MarkdownParser{md: md}
}

// Parse parses source. goldmark has no context support, so cancellation is
// checked before parsing and raced against it afterwards.
func (p *MarkdownParser) Parse(ctx context.Context, source []byte) (ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan ast.Node, 1)
	go func() {
		done <- p.md.Parser().Parse(text.NewReader(source))
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case doc := <-done:
		return doc, nil
	}
}
