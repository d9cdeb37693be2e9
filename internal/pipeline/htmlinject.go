package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/markup"
)

// ErrPageRender indicates the page template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// DefaultLang is the page language when front matter has no "lang" key.
const DefaultLang = "en"

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, after <body>, or at the
// start of the content, whichever is found first.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + SanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}
	// Fallback: prepend
	return styleBlock + htmlContent
}

// SanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func SanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// HeaderData is the document header shown above the body.
type HeaderData struct {
	Title       string
	Subtitle    string
	Author      string
	Date        string
	Description string
}

// HeaderFromFrontMatter collects header fields from front matter. It returns
// nil when none of title, subtitle, author or date is set.
func HeaderFromFrontMatter(fm frontmatter.FrontMatter) *HeaderData {
	get := func(key string) string {
		v, _ := fm.String(key)
		return strings.TrimSpace(v)
	}
	h := &HeaderData{
		Title:       get("title"),
		Subtitle:    get("subtitle"),
		Author:      get("author"),
		Date:        get("date"),
		Description: get("description"),
	}
	if h.Title == "" && h.Subtitle == "" && h.Author == "" && h.Date == "" {
		return nil
	}
	return h
}

// RenderHeader renders h as a header.md-header block. A nil header renders
// as "".
func RenderHeader(h *HeaderData) string {
	if h == nil {
		return ""
	}

	meta := markup.Sequence(
		markup.When(h.Author != "", func() []markup.Node {
			return markup.Single(markup.El("span", markup.Attributes{Classes: []string{"md-author"}}, markup.Text(h.Author)))
		}),
		markup.When(h.Date != "", func() []markup.Node {
			return markup.Single(markup.El("time", markup.Attributes{Classes: []string{"md-date"}}, markup.Text(h.Date)))
		}),
	)

	return markup.El("header", markup.Attributes{Classes: []string{"md-header"}, Role: markup.RoleBanner},
		markup.Build(
			markup.When(h.Title != "", func() []markup.Node {
				return markup.Single(markup.El("h1", markup.Attributes{Classes: []string{"md-title"}}, markup.Text(h.Title)))
			}),
			markup.When(h.Subtitle != "", func() []markup.Node {
				return markup.Single(markup.El("p", markup.Attributes{Classes: []string{"md-subtitle"}}, markup.Text(h.Subtitle)))
			}),
			markup.When(len(meta) > 0, func() []markup.Node {
				return markup.Single(markup.El("p", markup.Attributes{Classes: []string{"md-meta"}}, meta...))
			}),
		)...,
	).Render()
}

// PageData is the input of page assembly. Header, TableOfContents and Body
// are trusted HTML fragments.
type PageData struct {
	Lang            string
	Title           string
	Description     string
	Author          string
	Stylesheet      string
	Header          string
	TableOfContents string
	Body            string
}

// pageView is what the page template sees.
type pageView struct {
	Lang            string
	Title           string
	Description     string
	Author          string
	Stylesheet      template.CSS
	Header          template.HTML
	TableOfContents template.HTML
	Body            template.HTML
}

// PageAssembler renders standalone HTML pages from a template.
type PageAssembler struct {
	tmpl *template.Template
}

// NewPageAssembler creates a PageAssembler from template content.
func NewPageAssembler(tmplContent string) (*PageAssembler, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageAssembler{tmpl: tmpl}, nil
}

// Assemble renders data into a full HTML page.
func (a *PageAssembler) Assemble(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lang := data.Lang
	if lang == "" {
		lang = DefaultLang
	}
	view := pageView{
		Lang:            lang,
		Title:           data.Title,
		Description:     data.Description,
		Author:          data.Author,
		Stylesheet:      template.CSS(SanitizeCSS(data.Stylesheet)),
		Header:          template.HTML(data.Header),
		TableOfContents: template.HTML(data.TableOfContents),
		Body:            template.HTML(data.Body),
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
