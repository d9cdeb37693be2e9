// Package md2html converts Markdown with front matter to HTML.
//
// # Quick Start
//
// Create a parser once and reuse it; it is safe for concurrent use:
//
//	p, err := md2html.NewParser()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := p.Parse(ctx, "---\ntitle: Notes\n---\n# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.FrontMatter["title"], doc.Body)
//
// ParseSafely never fails: on error the body is the escaped source inside
// <pre class="md-fallback">.
//
// # Pipeline
//
//  1. Line ending normalization and front matter extraction
//  2. Parsing into a goldmark tree (GFM)
//  3. Rendering the tree with the basic or enhanced renderer; ==highlight==
//     marks become <mark> in text only, never in code or raw HTML
//  4. Post-processing (base URL rewriting, sanitization)
//
// # Front Matter
//
// A front matter block opens and closes with a "---" line and holds
// "key: value" lines. Keys are lowercased. Values of keys containing
// "date", and of "published", are parsed as dates like "March 4, 2024" and
// kept as strings when they do not parse.
//
// # Variants
//
// The basic renderer emits plain semantic HTML. The enhanced renderer adds
// heading ids and a table of contents, highlighted code blocks with a
// header bar, lazy images and optional math markup:
//
//	p, err := md2html.NewParser(
//	    md2html.WithVariant(md2html.VariantEnhanced),
//	    md2html.WithRenderOptions(md2html.RenderOptions{
//	        Highlight: md2html.HighlightSelected,
//	        Languages: []string{"go", "python"},
//	        TOC:       md2html.TOCOptions{Enabled: true, MaxDepth: 2, AnchorIDs: true},
//	        Math:      true,
//	    }),
//	)
//
// # Typography
//
// Element classes and the stylesheet come from a typography configuration,
// either a named preset or a custom one:
//
//	p, err := md2html.NewParser(md2html.WithPreset("classic"))
//	css := p.GenerateCSS()
//
// # Standalone Pages
//
// Document wraps a parsed document into a full HTML page with its
// stylesheet, a header built from title, subtitle, author and date, and the
// table of contents:
//
//	doc, _, err := p.ParseWithTableOfContents(ctx, source)
//	page, err := p.Document(ctx, doc)
//
// # Untrusted Input
//
// Raw HTML in Markdown is passed through unescaped. Use WithSanitizer(true)
// when rendering untrusted input.
package md2html
