package md2html

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/markup"
	"github.com/alnah/go-md2html/typography"
)

// FallbackClass is the class of the <pre> block ParseSafely returns when
// parsing fails.
const FallbackClass = "md-fallback"

// Parser turns Markdown with optional front matter into HTML. It is
// immutable after NewParser and safe for concurrent use.
type Parser struct {
	variant        Variant
	opts           RenderOptions
	typo           *typography.Configuration
	presetName     string
	extraCSS       string
	sanitize       bool
	baseURL        string
	assetPath      string
	highlightStyle string
	logger         *slog.Logger
	stylesheet     string

	loader    assets.AssetLoader
	markdown  *pipeline.MarkdownParser
	renderer  render.Renderer
	sanitizer *pipeline.Sanitizer
	page      *pipeline.PageAssembler
}

// NewParser creates a Parser. Without options it renders with the enhanced
// variant, DefaultRenderOptions and the default typography preset.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		variant: VariantEnhanced,
		opts:    DefaultRenderOptions(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		loader:  assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.opts.Validate(); err != nil {
		return nil, err
	}

	if p.assetPath != "" {
		resolver, err := assets.NewAssetResolver(p.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAsset, err)
		}
		p.loader = resolver
		p.logger.Debug("asset resolver", "path", p.assetPath, "custom", resolver.HasCustomLoader())
	}

	if p.typo == nil {
		typo, err := p.loadPreset()
		if err != nil {
			return nil, err
		}
		p.typo = &typo
	}

	tmpl, err := p.loader.Load(assets.KindTemplate, assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	p.page, err = pipeline.NewPageAssembler(string(tmpl))
	if err != nil {
		return nil, fmt.Errorf("initializing page assembler: %w", err)
	}

	p.markdown = pipeline.NewMarkdownParser()
	p.renderer = render.New(p.variant, p.opts.internal(p.typo))
	if p.sanitize {
		p.sanitizer = pipeline.NewSanitizer()
	}

	p.stylesheet, err = p.buildCSS()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// loadPreset resolves the named preset through the asset loader so custom
// asset directories can override built-in presets.
func (p *Parser) loadPreset() (typography.Configuration, error) {
	name := p.presetName
	if name == "" {
		name = typography.DefaultPreset
	}
	data, err := p.loader.Load(assets.KindPreset, name)
	if err != nil {
		if errors.Is(err, assets.ErrPresetNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return typography.Configuration{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, typography.PresetNames())
		}
		return typography.Configuration{}, err
	}
	return typography.Load(data)
}

// Variant reports the renderer variant.
func (p *Parser) Variant() Variant { return p.variant }

// Typography returns a deep copy of the active typography configuration.
// Changes to it do not affect the parser.
func (p *Parser) Typography() typography.Configuration {
	return typography.Configuration{}.Merge(*p.typo)
}

// Parse extracts front matter and renders the body. It fails on empty
// input, malformed front matter, and content errors such as a link with
// no destination.
func (p *Parser) Parse(ctx context.Context, raw string) (*ParsedDocument, error) {
	doc, _, err := p.parse(ctx, raw)
	return doc, err
}

// ParseWithTableOfContents is Parse that also renders the table of
// contents. The returned markup is "" when no heading was recorded.
func (p *Parser) ParseWithTableOfContents(ctx context.Context, raw string) (*ParsedDocument, string, error) {
	doc, entries, err := p.parse(ctx, raw)
	if err != nil {
		return nil, "", err
	}
	toc := p.renderTOC(entries)
	if toc != "" {
		doc.TableOfContents = &toc
	}
	return doc, toc, nil
}

// ParseSafely never fails. When Parse would fail, it returns a document
// with empty front matter whose body is the escaped input inside
// <pre class="md-fallback">.
func (p *Parser) ParseSafely(ctx context.Context, raw string) *ParsedDocument {
	doc, err := p.Parse(ctx, raw)
	if err != nil {
		return p.fallback(raw, err)
	}
	return doc
}

// ParseSafelyWithTableOfContents is ParseSafely that also renders the
// table of contents. The fallback document has no table of contents.
func (p *Parser) ParseSafelyWithTableOfContents(ctx context.Context, raw string) (*ParsedDocument, string) {
	doc, toc, err := p.ParseWithTableOfContents(ctx, raw)
	if err != nil {
		return p.fallback(raw, err), ""
	}
	return doc, toc
}

func (p *Parser) fallback(raw string, err error) *ParsedDocument {
	p.logger.Debug("falling back to escaped source", "error", err)
	body := markup.El("pre", markup.Attributes{Classes: []string{FallbackClass}}, markup.Text(raw)).Render()
	return &ParsedDocument{FrontMatter: FrontMatter{}, Body: body}
}

func (p *Parser) parse(ctx context.Context, raw string) (*ParsedDocument, []TOCEntry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil, ErrEmptyContent
	}

	fm, body, err := frontmatter.Extract(pipeline.NormalizeLineEndings(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("extracting front matter: %w", err)
	}
	p.logger.Debug("front matter extracted", "keys", fm.Keys())

	source := []byte(body)
	tree, err := p.markdown.Parse(ctx, source)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing markdown: %w", err)
	}

	result, err := p.renderer.Render(tree, source)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering markdown: %w", err)
	}
	p.logger.Debug("rendered", "variant", p.variant.String(), "headings", len(result.TOC))

	html := result.HTML
	if p.baseURL != "" {
		html, err = pipeline.RewriteRelativeURLs(html, p.baseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("rewriting relative URLs: %w", err)
		}
	}
	if p.sanitizer != nil {
		html = p.sanitizer.Sanitize(html)
	}

	doc := &ParsedDocument{
		FrontMatter: fm,
		Body:        html,
		Headings:    result.TOC,
	}
	if p.stylesheet != "" {
		css := p.stylesheet
		doc.Stylesheet = &css
	}
	return doc, result.TOC, nil
}

func (p *Parser) renderTOC(entries []TOCEntry) string {
	return render.RenderTOC(entries, render.TOCStyle{
		Title:    p.opts.TOC.Title,
		Numbered: p.opts.TOC.Numbered,
	})
}

// GenerateCSS returns the stylesheet: the typography configuration,
// followed by the base document styles, the highlighting token styles when
// the enhanced variant highlights code, and the extra stylesheet.
func (p *Parser) GenerateCSS() string {
	return p.stylesheet
}

func (p *Parser) buildCSS() (string, error) {
	parts := []string{p.typo.CSS()}

	base, err := p.loader.Load(assets.KindStyle, assets.DefaultStyleName)
	if err != nil {
		return "", fmt.Errorf("loading base stylesheet: %w", err)
	}
	parts = append(parts, string(base))

	if p.variant == VariantEnhanced && p.opts.Highlight != HighlightOff {
		highlight, err := render.HighlightCSS(p.highlightStyle)
		if err != nil {
			return "", err
		}
		parts = append(parts, highlight)
	}

	parts = append(parts, p.extraCSS)
	return joinCSS(parts), nil
}

func joinCSS(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(part)
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

// Document wraps a parsed document into a standalone HTML page with its
// stylesheet, a header built from the front matter and its table of
// contents.
func (p *Parser) Document(ctx context.Context, doc *ParsedDocument) (string, error) {
	data := &pipeline.PageData{
		Body:   doc.Body,
		Header: pipeline.RenderHeader(pipeline.HeaderFromFrontMatter(doc.FrontMatter)),
	}
	data.Lang, _ = doc.FrontMatter.String("lang")
	data.Title = doc.Title()
	if data.Title == "" && len(doc.Headings) > 0 {
		data.Title = doc.Headings[0].Text
	}
	data.Description, _ = doc.FrontMatter.String("description")
	data.Author, _ = doc.FrontMatter.String("author")
	if doc.Stylesheet != nil {
		data.Stylesheet = *doc.Stylesheet
	}
	if doc.TableOfContents != nil {
		data.TableOfContents = *doc.TableOfContents
	}
	return p.page.Assemble(ctx, data)
}
