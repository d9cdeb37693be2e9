package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2html/markup"
	"github.com/alnah/go-md2html/typography"
)

// Result is the output of one render.
type Result struct {
	HTML string
	// TOC lists recorded headings in document order. Always empty for the
	// basic variant.
	TOC []TOCEntry
}

// Renderer turns a parsed document into HTML.
type Renderer interface {
	Render(doc ast.Node, source []byte) (*Result, error)
	Variant() Variant
}

// Basic renders plain markup.
type Basic struct {
	typography *typography.Configuration
	marks      bool
}

// NewBasic creates a Basic renderer. A nil configuration disables class
// injection.
func NewBasic(typo *typography.Configuration) *Basic {
	return &Basic{typography: typo}
}

// WithMarks returns a copy of b that renders ==text== as <mark>.
func (b *Basic) WithMarks(enabled bool) *Basic {
	c := *b
	c.marks = enabled
	return &c
}

// Render implements Renderer.
func (b *Basic) Render(doc ast.Node, source []byte) (*Result, error) {
	w := &walker{variant: VariantBasic, opts: Options{Typography: b.typography, Marks: b.marks}, source: source}
	return w.run(doc)
}

// Variant implements Renderer.
func (b *Basic) Variant() Variant { return VariantBasic }

// Enhanced renders markup with highlighting, heading ids, code block chrome
// and math.
type Enhanced struct {
	opts Options
}

// NewEnhanced creates an Enhanced renderer.
func NewEnhanced(opts Options) *Enhanced {
	opts.Languages = append([]string(nil), opts.Languages...)
	return &Enhanced{opts: opts}
}

// Render implements Renderer.
func (e *Enhanced) Render(doc ast.Node, source []byte) (*Result, error) {
	w := &walker{variant: VariantEnhanced, opts: e.opts, source: source}
	return w.run(doc)
}

// Variant implements Renderer.
func (e *Enhanced) Variant() Variant { return VariantEnhanced }

// New returns the renderer for a variant.
func New(v Variant, opts Options) Renderer {
	if v == VariantEnhanced {
		return NewEnhanced(opts)
	}
	return NewBasic(opts.Typography).WithMarks(opts.Marks)
}

// Compile-time interface checks.
var (
	_ Renderer = (*Basic)(nil)
	_ Renderer = (*Enhanced)(nil)
)

// walker carries the state of a single render. It is never shared.
type walker struct {
	variant Variant
	opts    Options
	source  []byte

	headingCount int
	inTableHead  bool
	toc          []TOCEntry
}

func (w *walker) enhanced() bool { return w.variant == VariantEnhanced }

func (w *walker) run(doc ast.Node) (*Result, error) {
	if doc == nil {
		return &Result{}, nil
	}
	out, err := w.node(doc)
	if err != nil {
		return nil, err
	}
	return &Result{HTML: out, TOC: w.toc}, nil
}

// children renders the children of n in order.
func (w *walker) children(n ast.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		s, err := w.node(c)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// element renders n's children inside tag, styled as kind.
func (w *walker) element(n ast.Node, tag string, attrs markup.Attributes, kind typography.Element) (string, error) {
	inner, err := w.children(n)
	if err != nil {
		return "", err
	}
	return w.styled(markup.AssembleTag(tag, attrs.Fragments(), inner, markup.Paired), kind), nil
}

// styled injects the typography classes configured for kind.
func (w *walker) styled(fragment string, kind typography.Element) string {
	if w.opts.Typography == nil {
		return fragment
	}
	s, ok := w.opts.Typography.Element(kind)
	if !ok {
		return fragment
	}
	return markup.InjectClasses(fragment, s.Classes)
}

func (w *walker) node(n ast.Node) (string, error) {
	switch n := n.(type) {
	case *ast.Document:
		return w.children(n)
	case *ast.Heading:
		return w.heading(n)
	case *ast.Paragraph:
		return w.paragraph(n)
	case *ast.TextBlock:
		return w.children(n)
	case *ast.Text:
		return w.text(n), nil
	case *ast.String:
		return w.inlineText(string(n.Value)), nil
	case *ast.Emphasis:
		if n.Level >= 2 {
			return w.element(n, "strong", markup.Attributes{}, typography.ElementStrong)
		}
		return w.element(n, "em", markup.Attributes{}, typography.ElementEmphasis)
	case *ast.Link:
		return w.link(n)
	case *ast.AutoLink:
		return w.autoLink(n)
	case *ast.Image:
		return w.image(n)
	case *ast.CodeSpan:
		return w.styled("<code>"+markup.EscapeHTML(w.codeText(n))+"</code>", typography.ElementCode), nil
	case *ast.FencedCodeBlock:
		return w.codeBlock(n, n.Info)
	case *ast.CodeBlock:
		return w.codeBlock(n, nil)
	case *ast.List:
		return w.list(n)
	case *ast.ListItem:
		return w.listItem(n)
	case *ast.Blockquote:
		return w.block(n, "blockquote", typography.ElementBlockquote)
	case *ast.ThematicBreak:
		return w.styled(markup.AssembleTag("hr", nil, "", markup.SelfClosing), typography.ElementRule) + "\n", nil
	case *ast.HTMLBlock:
		return w.htmlBlock(n), nil
	case *ast.RawHTML:
		return w.rawHTML(n), nil
	case *east.Table:
		return w.table(n)
	case *east.TableHeader:
		return w.tableHeader(n)
	case *east.TableRow:
		return w.tableRow(n)
	case *east.TableCell:
		return w.tableCell(n)
	case *east.Strikethrough:
		return w.element(n, "del", markup.Attributes{}, "")
	case *east.TaskCheckBox:
		return markup.AssembleTag("input", compact([]string{
			markup.Scalar("type", "checkbox"),
			markup.Flag("checked", n.IsChecked),
			markup.Flag("disabled", true),
		}), "", markup.SelfClosing) + " ", nil
	default:
		return w.children(n)
	}
}

func (w *walker) heading(n *ast.Heading) (string, error) {
	inner, err := w.children(n)
	if err != nil {
		return "", err
	}

	var attrs markup.Attributes
	if w.enhanced() && w.opts.TOC.Enabled && n.Level <= w.opts.TOC.maxDepth() {
		text := w.plainText(n)
		w.headingCount++
		id := Slugify(text) + "-" + strconv.Itoa(w.headingCount)
		if w.opts.TOC.AnchorIDs {
			attrs.ID = id
		}
		w.toc = append(w.toc, TOCEntry{Level: n.Level, Text: text, ID: id})
	}

	tag := "h" + strconv.Itoa(n.Level)
	out := markup.AssembleTag(tag, attrs.Fragments(), inner, markup.Paired)
	if w.opts.Typography != nil {
		if s, ok := w.opts.Typography.Heading(n.Level); ok {
			out = markup.InjectClasses(out, s.Classes)
		}
	}
	return out + "\n", nil
}

func (w *walker) paragraph(n *ast.Paragraph) (string, error) {
	if w.enhanced() && w.opts.Math {
		if tex, ok := displayMath(w.lines(n)); ok {
			return renderDisplayMath(tex) + "\n", nil
		}
	}
	out, err := w.element(n, "p", markup.Attributes{}, typography.ElementParagraph)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func (w *walker) text(n *ast.Text) string {
	out := w.inlineText(w.textValue(n))
	switch {
	case n.HardLineBreak():
		out += "<br />\n"
	case n.SoftLineBreak():
		out += "\n"
	}
	return out
}

// inlineText escapes s, converts ==marks== when enabled and, for enhanced
// math, $...$ spans. Mark delimiters inside math are left alone.
func (w *walker) inlineText(s string) string {
	if w.enhanced() && w.opts.Math {
		return inlineMath(s, w.escapeText)
	}
	return w.escapeText(s)
}

// escapeText escapes a run of text that holds no math.
func (w *walker) escapeText(s string) string {
	out := markup.EscapeHTML(s)
	if w.opts.Marks {
		out = renderMarks(out)
	}
	return out
}

func (w *walker) link(n *ast.Link) (string, error) {
	dest := strings.TrimSpace(string(n.Destination))
	if dest == "" {
		return "", fmt.Errorf("%w: [%s]", ErrInvalidLink, w.plainText(n))
	}
	attrs := markup.Attributes{Extra: w.linkAttrs(dest, string(n.Title))}
	return w.element(n, "a", attrs, typography.ElementLink)
}

func (w *walker) autoLink(n *ast.AutoLink) (string, error) {
	label := string(n.Label(w.source))
	dest := string(n.URL(w.source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(dest), "mailto:") {
		dest = "mailto:" + dest
	}
	if dest == "" {
		return "", fmt.Errorf("%w: <%s>", ErrInvalidLink, label)
	}
	attrs := markup.Attributes{Extra: w.linkAttrs(dest, "")}
	out := markup.AssembleTag("a", attrs.Fragments(), markup.EscapeHTML(label), markup.Paired)
	return w.styled(out, typography.ElementLink), nil
}

// linkAttrs builds href, title and the external-link attributes. The two
// variants use different rel values.
func (w *walker) linkAttrs(dest, title string) []string {
	attrs := []string{markup.Scalar("href", dest), markup.Scalar("title", title)}
	if isExternal(dest) {
		rel := "noopener"
		if w.enhanced() {
			rel = "noopener noreferrer"
		}
		attrs = append(attrs, markup.Scalar("target", "_blank"), markup.Scalar("rel", rel))
	}
	return compact(attrs)
}

func isExternal(dest string) bool {
	lower := strings.ToLower(dest)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func (w *walker) image(n *ast.Image) (string, error) {
	src := strings.TrimSpace(string(n.Destination))
	alt := w.plainText(n)
	if src == "" {
		return "", fmt.Errorf("%w: ![%s]", ErrInvalidImage, alt)
	}
	attrs := compact([]string{
		markup.Scalar("src", src),
		"alt=\"" + markup.EscapeHTML(alt) + "\"",
		markup.Scalar("title", string(n.Title)),
	})
	if w.enhanced() {
		attrs = append(attrs, markup.Scalar("loading", "lazy"))
	}
	return w.styled(markup.AssembleTag("img", attrs, "", markup.SelfClosing), typography.ElementImage), nil
}

func (w *walker) list(n *ast.List) (string, error) {
	tag := "ul"
	var extra []string
	if n.IsOrdered() {
		tag = "ol"
		if n.Start != 0 && n.Start != 1 {
			extra = append(extra, markup.Scalar("start", strconv.Itoa(n.Start)))
		}
	}
	inner, err := w.children(n)
	if err != nil {
		return "", err
	}
	out := markup.AssembleTag(tag, extra, "\n"+inner, markup.Paired)
	return w.styled(out, typography.ElementList) + "\n", nil
}

func (w *walker) listItem(n *ast.ListItem) (string, error) {
	var attrs markup.Attributes
	if hasTaskCheckBox(n) {
		attrs.Classes = []string{"task-list-item"}
	}
	out, err := w.element(n, "li", attrs, typography.ElementListItem)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func hasTaskCheckBox(item *ast.ListItem) bool {
	first := item.FirstChild()
	if first == nil {
		return false
	}
	_, ok := first.FirstChild().(*east.TaskCheckBox)
	return ok
}

func (w *walker) block(n ast.Node, tag string, kind typography.Element) (string, error) {
	inner, err := w.children(n)
	if err != nil {
		return "", err
	}
	out := markup.AssembleTag(tag, nil, "\n"+inner, markup.Paired)
	return w.styled(out, kind) + "\n", nil
}

func (w *walker) htmlBlock(n *ast.HTMLBlock) string {
	var b strings.Builder
	b.WriteString(w.lines(n))
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(w.source))
	}
	return b.String()
}

func (w *walker) rawHTML(n *ast.RawHTML) string {
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(w.source))
	}
	return b.String()
}

// lines joins the raw source lines of a block node.
func (w *walker) lines(n ast.Node) string {
	var b strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(w.source))
	}
	return b.String()
}

// plainText concatenates the text content below n, without markup.
func (w *walker) plainText(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.WriteString(w.textValue(c))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.Label(w.source))
		}
		return ast.WalkContinue, nil
	})
	text := strings.TrimSpace(b.String())
	if w.opts.Marks {
		text = stripMarks(text)
	}
	return text
}

// textValue resolves backslash escapes and entity references in a text
// segment, leaving raw segments untouched.
func (w *walker) textValue(n *ast.Text) string {
	value := n.Segment.Value(w.source)
	if n.IsRaw() {
		return string(value)
	}
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}

// codeText returns the literal content of a code span. Line endings
// become spaces.
func (w *walker) codeText(n *ast.CodeSpan) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(w.source)
		if v, found := bytes.CutSuffix(value, []byte("\n")); found {
			b.Write(v)
			b.WriteByte(' ')
			continue
		}
		b.Write(value)
	}
	return b.String()
}

// compact drops absent attribute fragments.
func compact(attrs []string) []string {
	out := attrs[:0]
	for _, a := range attrs {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}
