package render

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2html/markup"
)

// inlineMathPattern matches $...$ where the delimiters touch non-space
// characters, so prices such as "$5 and $6" are left alone.
var inlineMathPattern = regexp.MustCompile(`\$([^\s$](?:[^$\n]*[^\s$])?)\$`)

// inlineMath turns each $tex$ span of s into a MathJax/KaTeX inline
// element. The text between spans goes through plain.
func inlineMath(s string, plain func(string) string) string {
	matches := inlineMathPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return plain(s)
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(plain(s[last:m[0]]))
		b.WriteString(markup.AssembleTag("span",
			markup.Attributes{Classes: []string{"math", "math-inline"}}.Fragments(),
			`\(`+markup.EscapeHTML(s[m[2]:m[3]])+`\)`, markup.Paired))
		last = m[1]
	}
	b.WriteString(plain(s[last:]))
	return b.String()
}

// displayMath reports whether a paragraph's source is a single $$...$$
// block and returns its content.
func displayMath(source string) (string, bool) {
	s := strings.TrimSpace(source)
	if len(s) < 5 || !strings.HasPrefix(s, "$$") || !strings.HasSuffix(s, "$$") {
		return "", false
	}
	tex := strings.TrimSpace(s[2 : len(s)-2])
	if tex == "" || strings.Contains(tex, "$$") {
		return "", false
	}
	return tex, true
}

func renderDisplayMath(tex string) string {
	return markup.AssembleTag("div",
		markup.Attributes{Classes: []string{"math", "math-display"}, Role: markup.RoleMath}.Fragments(),
		`\[`+markup.EscapeHTML(tex)+`\]`, markup.Paired)
}
