package markup

import (
	"regexp"
	"strings"
)

var (
	// firstTagPattern matches the first tag of a fragment. Only this tag is
	// ever patched; nested or later tags are left alone.
	firstTagPattern = regexp.MustCompile(`<[^<>]+>`)

	// classAttrPattern matches a double-quoted class attribute inside one tag.
	classAttrPattern = regexp.MustCompile(`(\sclass=")([^"]*)(")`)
)

// InjectClasses adds classes to the first tag of an already rendered
// fragment. Existing class values are kept first, requested classes follow in
// call order. When the fragment contains no tag, it is wrapped in a span
// carrying the classes. The text content is never modified.
func InjectClasses(fragment string, classes []string) string {
	joined := joinClasses(classes)
	if joined == "" {
		return fragment
	}

	loc := firstTagPattern.FindStringIndex(fragment)
	if loc == nil {
		return AssembleTag("span", []string{Scalar("class", joined)}, fragment, Paired)
	}

	tag := fragment[loc[0]:loc[1]]
	var patched string
	if m := classAttrPattern.FindStringSubmatchIndex(tag); m != nil {
		existing := tag[m[4]:m[5]]
		value := EscapeHTML(joined)
		if strings.TrimSpace(existing) != "" {
			value = existing + " " + value
		}
		patched = tag[:m[4]] + value + tag[m[5]:]
	} else {
		insertAt := len(tag) - 1
		if strings.HasSuffix(tag, "/>") {
			insertAt = len(tag) - 2
			for insertAt > 0 && tag[insertAt-1] == ' ' {
				insertAt--
			}
		}
		patched = tag[:insertAt] + " " + Scalar("class", joined) + tag[insertAt:]
	}

	return fragment[:loc[0]] + patched + fragment[loc[1]:]
}

// Styled renders a node and injects classes into its first tag.
type Styled struct {
	Node    Node
	Classes []string
}

// WithClasses wraps n so that its rendered markup carries classes.
func WithClasses(n Node, classes ...string) Styled {
	return Styled{Node: n, Classes: classes}
}

func (s Styled) Body() Node { return s }
func (Styled) isLeaf() {}

// Render applies InjectClasses to the rendered node.
func (s Styled) Render() string {
	if s.Node == nil {
		return ""
	}
	return InjectClasses(s.Node.Render(), s.Classes)
}
