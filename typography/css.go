package typography

import (
	"fmt"
	"slices"
	"strings"
)

// responsiveBreakpoint is the viewport width under which text is scaled down.
const responsiveBreakpoint = "640px"

// responsiveScale is applied to heading sizes under the breakpoint.
const responsiveScale = "0.85"

// declaration is one "property: value" line of a rule.
type declaration struct {
	property string
	value    string
}

// CSS serializes the configuration. Blocks are emitted for the body
// defaults, then heading levels ascending, element kinds in Elements
// order and selectors sorted. Unset properties produce no lines and rules
// without declarations are skipped. The output is deterministic.
func (c Configuration) CSS() string {
	var buf strings.Builder

	var body []declaration
	if c.FontFamily != "" {
		body = append(body, declaration{"font-family", c.FontFamily})
	}
	if c.FontSize != "" {
		body = append(body, declaration{"font-size", c.FontSize.CSS()})
	}
	writeRule(&buf, "body", body)

	for _, level := range sortedLevels(c.Headings) {
		writeRule(&buf, fmt.Sprintf("h%d", level), c.Headings[level].declarations())
	}

	for _, kind := range Elements {
		if s, ok := c.Elements[kind]; ok {
			writeRule(&buf, kind.Selector(), s.declarations())
		}
	}

	selectors := make([]string, 0, len(c.Selectors))
	for sel := range c.Selectors {
		selectors = append(selectors, sel)
	}
	slices.Sort(selectors)
	for _, sel := range selectors {
		writeRule(&buf, sel, c.Selectors[sel].declarations())
	}

	if c.Responsive {
		writeResponsive(&buf, c)
	}

	return buf.String()
}

// CSS serializes a single style under selector.
func (s Style) CSS(selector string) string {
	var buf strings.Builder
	writeRule(&buf, selector, s.declarations())
	return buf.String()
}

// declarations lists the set properties of s in emission order.
func (s Style) declarations() []declaration {
	var out []declaration
	add := func(property, value string) {
		if value != "" {
			out = append(out, declaration{property, value})
		}
	}

	if f := s.Font; f != nil {
		add("font-family", f.Family)
		add("font-size", f.Size.CSS())
		add("font-weight", f.Weight.CSS())
		add("text-align", string(f.Align))
		add("color", f.Color)
		add("line-height", f.LineHeight)
		add("letter-spacing", f.LetterSpacing)
		add("text-decoration", f.Decoration)
		add("text-transform", f.Transform)
	}
	if b := s.Background; b != nil {
		add("background-color", b.Color)
		if b.Image != "" {
			add("background-image", fmt.Sprintf(`url("%s")`, escapeCSSString(b.Image)))
		}
	}
	if p := s.Padding; p != nil {
		add("padding-top", p.Top)
		add("padding-right", p.Right)
		add("padding-bottom", p.Bottom)
		add("padding-left", p.Left)
	}
	if m := s.Margin; m != nil {
		add("margin-top", m.Top)
		add("margin-right", m.Right)
		add("margin-bottom", m.Bottom)
		add("margin-left", m.Left)
	}
	if b := s.Border; b != nil {
		add("border-width", b.Width)
		add("border-style", b.Style)
		add("border-color", b.Color)
		add("border-radius", b.Radius)
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		add(name, s.Properties[name])
	}

	return out
}

func writeRule(buf *strings.Builder, selector string, decls []declaration) {
	if len(decls) == 0 {
		return
	}
	buf.WriteString(selector)
	buf.WriteString(" {\n")
	for _, d := range decls {
		buf.WriteString("  ")
		buf.WriteString(d.property)
		buf.WriteString(": ")
		buf.WriteString(d.value)
		buf.WriteString(";\n")
	}
	buf.WriteString("}\n")
}

func writeResponsive(buf *strings.Builder, c Configuration) {
	buf.WriteString("@media (max-width: " + responsiveBreakpoint + ") {\n")
	buf.WriteString("  html {\n    font-size: 93.75%;\n  }\n")
	for _, level := range sortedLevels(c.Headings) {
		f := c.Headings[level].Font
		if f == nil || f.Size == "" {
			continue
		}
		fmt.Fprintf(buf, "  h%d {\n    font-size: calc(%s * %s);\n  }\n", level, f.Size.CSS(), responsiveScale)
	}
	buf.WriteString("}\n")
}

func sortedLevels(headings map[int]Style) []int {
	levels := make([]int, 0, len(headings))
	for level := range headings {
		levels = append(levels, level)
	}
	slices.Sort(levels)
	return levels
}

// escapeCSSString escapes a string for use inside a quoted CSS value.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
