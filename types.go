package md2html

import (
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/render"
)

// FrontMatter holds the key/value metadata found before the body. Values are
// strings, or time.Time for date keys that parsed.
type FrontMatter = frontmatter.FrontMatter

// EncodeFrontMatter renders fm as a delimited block with sorted keys. Parsing
// the block back yields the same keys, with dates still read as dates.
func EncodeFrontMatter(fm FrontMatter) (string, error) {
	return frontmatter.Encode(fm)
}

// TOCEntry is one heading recorded during an enhanced render.
type TOCEntry = render.TOCEntry

// Variant selects the renderer flavor.
type Variant = render.Variant

// Renderer variants.
const (
	VariantBasic    = render.VariantBasic
	VariantEnhanced = render.VariantEnhanced
)

// HighlightMode controls syntax highlighting of code blocks.
type HighlightMode = render.HighlightMode

// Highlight modes.
const (
	HighlightOff      = render.HighlightOff
	HighlightSelected = render.HighlightSelected
	HighlightAll      = render.HighlightAll
)

// CodeOptions controls enhanced code block markup.
type CodeOptions = render.CodeOptions

// ParsedDocument is the result of a parse. TableOfContents is set by the
// WithTableOfContents variants when at least one heading was recorded.
// Stylesheet is set on every successful parse.
type ParsedDocument struct {
	FrontMatter     FrontMatter
	Body            string
	TableOfContents *string
	Stylesheet      *string

	// Headings lists the recorded table of contents entries, in document
	// order. It is empty for the basic variant.
	Headings []TOCEntry
}

// Title returns the "title" front matter value, or "".
func (d *ParsedDocument) Title() string {
	title, _ := d.FrontMatter.String("title")
	return title
}
