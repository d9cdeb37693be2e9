package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-md2html/markup"
	"github.com/alnah/go-md2html/typography"
)

func (w *walker) codeBlock(n ast.Node, info *ast.Text) (string, error) {
	code := w.lines(n)
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCodeBlock
	}

	if !w.enhanced() {
		out := "<pre><code>" + markup.EscapeHTML(code) + "</code></pre>"
		return w.styled(out, typography.ElementCodeBlock) + "\n", nil
	}

	var lang, filename string
	if info != nil {
		lang, filename = parseInfo(string(info.Segment.Value(w.source)))
	}
	if !w.opts.Code.Filename {
		filename = ""
	}

	lines, highlighted := w.codeLines(code, lang)
	return w.styled(w.codeFrame(lang, filename, lines, highlighted), typography.ElementCodeBlock) + "\n", nil
}

// codeLines returns the code split into rendered lines, highlighted when
// the options ask for it and a lexer exists.
func (w *walker) codeLines(code, lang string) ([]string, bool) {
	code = strings.TrimSuffix(code, "\n")
	if w.opts.highlights(lang) {
		if lines, ok := highlight(code, lang); ok {
			return lines, true
		}
	}
	raw := strings.Split(code, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = markup.EscapeHTML(l)
	}
	return lines, false
}

// codeFrame assembles the enhanced code block markup.
func (w *walker) codeFrame(lang, filename string, lines []string, highlighted bool) string {
	opts := w.opts.Code
	label := filename
	labelClass := "code-filename"
	if label == "" {
		label = lang
		labelClass = "code-lang"
	}
	runnable := opts.RunButton && lang == RunnableLanguage

	frameClasses := []string{"code-block"}
	if opts.Wrap {
		frameClasses = append(frameClasses, "wrap")
	}
	if opts.LineNumbers {
		frameClasses = append(frameClasses, "numbered")
	}
	frame := markup.Attributes{Classes: frameClasses}
	if lang != "" {
		frame.Data = map[string]string{"lang": lang}
	}

	var preClasses []string
	if highlighted {
		preClasses = []string{"chroma"}
	}
	var codeClasses []string
	if lang != "" {
		codeClasses = []string{"language-" + lang}
	}

	header := markup.Build(
		markup.When(label != "", func() []markup.Node {
			return markup.Single(markup.El("span", markup.Attributes{Classes: []string{labelClass}}, markup.Text(label)))
		}),
		markup.When(opts.CopyButton || runnable, func() []markup.Node {
			return markup.Single(markup.El("div", markup.Attributes{Classes: []string{"code-actions"}},
				markup.Build(
					markup.When(opts.CopyButton, func() []markup.Node {
						return markup.Single(button("code-copy", "Copy code", "Copy"))
					}),
					markup.When(runnable, func() []markup.Node {
						return markup.Single(button("code-run", "Run code", "Run"))
					}),
				)...,
			))
		}),
	)

	body := markup.Build(
		markup.ForEach(lines, func(i int, line string) []markup.Node {
			return markup.Single(w.codeLine(i+1, line, i == len(lines)-1))
		}),
	)

	return markup.Build(
		markup.Single(markup.El("div", frame,
			markup.Build(
				markup.When(len(header) > 0, func() []markup.Node {
					return markup.Single(markup.El("div", markup.Attributes{Classes: []string{"code-header"}}, header...))
				}),
				markup.Single(markup.El("pre", markup.Attributes{Classes: preClasses},
					markup.El("code", markup.Attributes{Classes: codeClasses}, body...),
				)),
			)...,
		)),
	).Render()
}

func (w *walker) codeLine(number int, line string, last bool) markup.Node {
	sep := "\n"
	if last {
		sep = ""
	}
	if !w.opts.Code.LineNumbers {
		return markup.Raw(line + sep)
	}
	return markup.Build(
		markup.Single(markup.El("span", markup.Attributes{Classes: []string{"line"}},
			markup.El("span", markup.Attributes{Classes: []string{"ln"}, Extra: []string{markup.Scalar("aria-hidden", "true")}},
				markup.Text(strconv.Itoa(number))),
			markup.Raw(line),
		)),
		markup.Single(markup.Raw(sep)),
	)
}

func button(class, label, text string) markup.Element {
	return markup.El("button", markup.Attributes{
		Classes:   []string{class},
		AriaLabel: label,
		Extra:     []string{markup.Scalar("type", "button")},
	}, markup.Text(text))
}

// highlight tokenizes code with the chroma lexer for lang and renders each
// line as spans carrying chroma's short class names.
func highlight(code, lang string) ([]string, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, false
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	lines := make([]string, 0, len(tokenLines))
	for _, tokens := range tokenLines {
		var b strings.Builder
		for _, tok := range tokens {
			value := strings.TrimSuffix(tok.Value, "\n")
			if value == "" {
				continue
			}
			class := tokenClass(tok.Type)
			if class == "" {
				b.WriteString(markup.EscapeHTML(value))
				continue
			}
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, markup.EscapeHTML(value))
		}
		lines = append(lines, b.String())
	}
	// Lexers configured with EnsureNL must not add a line.
	if want := strings.Count(code, "\n") + 1; len(lines) > want {
		lines = lines[:want]
	}
	return lines, true
}

// tokenClass returns the CSS class chroma's HTML formatter uses for t,
// falling back to the sub-category then the category.
func tokenClass(t chroma.TokenType) string {
	for _, candidate := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if class, ok := chroma.StandardTypes[candidate]; ok {
			return class
		}
	}
	return ""
}
