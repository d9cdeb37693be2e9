package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/alnah/go-md2html/markup"
)

// TOCEntry is one heading recorded during an enhanced render. Entries are
// produced as a flat list; Children is reserved for nested output and is
// always empty.
type TOCEntry struct {
	Level    int
	Text     string
	ID       string
	Children []TOCEntry
}

// Slugify lowercases text and joins runs of letters and digits with
// hyphens. An empty result becomes "section".
func Slugify(text string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "section"
	}
	return b.String()
}

// TOCStyle selects the markup of a rendered table of contents.
type TOCStyle struct {
	Title    string
	Numbered bool
}

// RenderTOC writes entries as a nav element. It returns "" when there are
// no entries.
func RenderTOC(entries []TOCEntry, style TOCStyle) string {
	if len(entries) == 0 {
		return ""
	}
	if style.Numbered {
		return renderNumberedTOC(entries, style.Title)
	}

	minLevel := entries[0].Level
	for _, e := range entries {
		minLevel = min(minLevel, e.Level)
	}

	nav := markup.Build(
		markup.When(style.Title != "", func() []markup.Node {
			return markup.Single(markup.El("h2", markup.Attributes{Classes: []string{"toc-title"}}, markup.Text(style.Title)))
		}),
		markup.Single(markup.El("ul", markup.Attributes{Classes: []string{"toc-list"}},
			markup.ForEach(entries, func(_ int, e TOCEntry) []markup.Node {
				return markup.Single(markup.El("li",
					markup.Attributes{Classes: []string{"toc-item", "toc-level-" + strconv.Itoa(e.Level-minLevel+1)}},
					tocLink(e, ""),
				))
			})...,
		)),
	)
	return markup.El("nav", markup.Attributes{Classes: []string{"toc"}, AriaLabel: "Table of contents"}, nav...).Render()
}

func tocLink(e TOCEntry, number string) markup.Element {
	label := e.Text
	if number != "" {
		label = number + " " + label
	}
	return markup.El("a", markup.Attributes{Extra: []string{markup.Scalar("href", "#"+e.ID)}}, markup.Text(label))
}

// numberingState tracks hierarchical numbering for TOC entries. The
// shallowest first heading becomes depth 1 and skipped levels collapse.
type numberingState struct {
	counters     [6]int
	minLevelSeen int
	lastLevel    int
}

// next returns the number string ("1.2.") and effective depth for level.
func (n *numberingState) next(level int) (string, int) {
	if n.minLevelSeen == 0 {
		n.minLevelSeen = level
	}

	depth := max(level-n.minLevelSeen+1, 1)
	// H1 followed by H3 nests one level, not two.
	if n.lastLevel > 0 && depth > n.lastLevel+1 {
		depth = n.lastLevel + 1
	}

	for i := depth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[depth-1]++
	n.lastLevel = depth

	parts := make([]string, depth)
	for i := range depth {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", depth
}

// renderNumberedTOC uses div rows with indentation so list styles from
// the page do not interfere with the numbers.
func renderNumberedTOC(entries []TOCEntry, title string) string {
	var numbering numberingState

	rows := markup.ForEach(entries, func(_ int, e TOCEntry) []markup.Node {
		num, depth := numbering.next(e.Level)
		attrs := markup.Attributes{Classes: []string{"toc-item"}}
		if depth > 1 {
			attrs.Extra = []string{markup.Scalar("style", fmt.Sprintf("padding-left:%.1fem", float64(depth-1)*1.5))}
		}
		return markup.Single(markup.El("div", attrs, tocLink(e, num)))
	})

	return markup.El("nav", markup.Attributes{Classes: []string{"toc", "toc-numbered"}, AriaLabel: "Table of contents"},
		markup.Build(
			markup.When(title != "", func() []markup.Node {
				return markup.Single(markup.El("h2", markup.Attributes{Classes: []string{"toc-title"}}, markup.Text(title)))
			}),
			markup.Single(markup.El("div", markup.Attributes{Classes: []string{"toc-list"}}, rows...)),
		)...,
	).Render()
}
