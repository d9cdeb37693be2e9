package md2html

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/typography"
)

// MaxTOCDepth is the deepest heading level a table of contents can include.
const MaxTOCDepth = 6

// TOCOptions controls heading ids and the table of contents.
type TOCOptions struct {
	Enabled   bool
	MaxDepth  int
	AnchorIDs bool
	// Title is rendered above the entries when set.
	Title string
	// Numbered renders hierarchical numbers ("1.", "1.1.") instead of a list.
	Numbered bool
}

// RenderOptions selects the enhanced rendering features. The basic variant
// only reads Highlights.
type RenderOptions struct {
	Highlight HighlightMode
	// Languages restricts highlighting when Highlight is HighlightSelected.
	Languages []string
	TOC       TOCOptions
	Code      CodeOptions
	Math      bool
	// Highlights enables ==text== marks.
	Highlights bool
}

// DefaultRenderOptions enables highlighting, heading ids with a depth 3
// table of contents, the copy button, filename display and marks.
func DefaultRenderOptions() RenderOptions {
	d := render.DefaultOptions()
	return RenderOptions{
		Highlight:  d.Highlight,
		TOC:        TOCOptions{Enabled: d.TOC.Enabled, MaxDepth: d.TOC.MaxDepth, AnchorIDs: d.TOC.AnchorIDs},
		Code:       d.Code,
		Highlights: true,
	}
}

// Validate checks option ranges.
func (o RenderOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Highlight, validation.In(HighlightOff, HighlightSelected, HighlightAll)),
		validation.Field(&o.Languages,
			validation.When(o.Highlight == HighlightSelected, validation.Required.Error("required when highlighting selected languages")),
			validation.Each(validation.Required),
		),
	)
	if err == nil {
		err = validation.Validate(o.TOC.MaxDepth, validation.Min(0), validation.Max(MaxTOCDepth))
		if err != nil {
			err = fmt.Errorf("toc max depth: %w", err)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

func (o RenderOptions) internal(typo *typography.Configuration) render.Options {
	return render.Options{
		Highlight:  o.Highlight,
		Languages:  o.Languages,
		TOC:        render.TOCOptions{Enabled: o.TOC.Enabled, MaxDepth: o.TOC.MaxDepth, AnchorIDs: o.TOC.AnchorIDs},
		Code:       o.Code,
		Math:       o.Math,
		Marks:      o.Highlights,
		Typography: typo,
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithVariant selects the basic or enhanced renderer. The default is
// VariantEnhanced.
func WithVariant(v Variant) Option {
	return func(p *Parser) {
		p.variant = v
	}
}

// WithRenderOptions replaces the rendering options.
func WithRenderOptions(o RenderOptions) Option {
	return func(p *Parser) {
		p.opts = o
	}
}

// WithTypography sets the typography configuration used for element
// classes and GenerateCSS. It takes precedence over WithPreset. The parser
// keeps its own copy of cfg.
func WithTypography(cfg typography.Configuration) Option {
	return func(p *Parser) {
		typo := typography.Configuration{}.Merge(cfg)
		p.typo = &typo
	}
}

// WithPreset selects a typography preset by name. Presets are looked up in
// the asset path first when one is set.
func WithPreset(name string) Option {
	return func(p *Parser) {
		p.presetName = name
	}
}

// WithStylesheet appends css to the generated stylesheet.
func WithStylesheet(css string) Option {
	return func(p *Parser) {
		p.extraCSS = css
	}
}

// WithSanitizer enables sanitization of the rendered body. Raw HTML in the
// Markdown is otherwise passed through unescaped.
func WithSanitizer(enabled bool) Option {
	return func(p *Parser) {
		p.sanitize = enabled
	}
}

// WithBaseURL resolves relative link and image URLs against base. A base
// without a scheme is a local directory and yields file:// URLs.
func WithBaseURL(base string) Option {
	return func(p *Parser) {
		p.baseURL = base
	}
}

// WithAssetPath overrides the embedded presets, styles and templates with
// files from dir. Missing files fall back to the embedded ones.
func WithAssetPath(dir string) Option {
	return func(p *Parser) {
		p.assetPath = dir
	}
}

// WithHighlightStyle selects the chroma style used for token colors in
// GenerateCSS.
func WithHighlightStyle(name string) Option {
	return func(p *Parser) {
		p.highlightStyle = name
	}
}

// WithLogger sets the logger for debug records. The default discards.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("md2html: WithLogger logger must not be nil")
	}
	return func(p *Parser) {
		p.logger = l
	}
}
