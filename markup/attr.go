package markup

import (
	"sort"
	"strings"
)

// TagShape selects the textual form produced by AssembleTag.
type TagShape int

const (
	// Paired renders <tag attrs>content</tag>.
	Paired TagShape = iota
	// SelfClosing renders <tag attrs />.
	SelfClosing
	// OpenOnly renders <tag attrs> for elements whose content is implicit.
	OpenOnly
)

// Role is an ARIA role value.
type Role string

// ARIA roles used by generated markup.
const (
	RoleNone         Role = ""
	RoleBanner       Role = "banner"
	RoleButton       Role = "button"
	RoleContentInfo  Role = "contentinfo"
	RoleFigure       Role = "figure"
	RoleMain         Role = "main"
	RoleMath         Role = "math"
	RoleNavigation   Role = "navigation"
	RoleNote         Role = "note"
	RolePresentation Role = "presentation"
	RoleRegion       Role = "region"
)

// Scalar returns name="value", or "" when value is empty.
// The value is HTML-escaped.
func Scalar(name, value string) string {
	if value == "" {
		return ""
	}
	return name + `="` + EscapeHTML(value) + `"`
}

// Flag returns the bare attribute name when enabled, or "".
func Flag(name string, enabled bool) string {
	if !enabled {
		return ""
	}
	return name
}

// Enum renders a string-backed value like Scalar.
// An empty raw value is treated as absent.
func Enum[T ~string](name string, value T) string {
	return Scalar(name, string(value))
}

// Attributes describes the attributes of one element.
// The zero value renders no attributes.
type Attributes struct {
	ID        string
	Classes   []string
	Role      Role
	AriaLabel string
	Data      map[string]string // rendered as data-<key>
	Extra     []string          // pre-serialized fragments, appended last
}

// Fragments serializes the attributes in a fixed order: id, class, role,
// aria-label, data-* (sorted by key), then Extra. Absent values are skipped.
func (a Attributes) Fragments() []string {
	var out []string
	add := func(fragment string) {
		if fragment != "" {
			out = append(out, fragment)
		}
	}

	add(Scalar("id", a.ID))
	add(Scalar("class", joinClasses(a.Classes)))
	add(Enum("role", a.Role))
	add(Scalar("aria-label", a.AriaLabel))

	if len(a.Data) > 0 {
		keys := make([]string, 0, len(a.Data))
		for k := range a.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			add(Scalar("data-"+k, a.Data[k]))
		}
	}

	for _, e := range a.Extra {
		add(e)
	}
	return out
}

// With returns a copy of a with extra fragments appended.
func (a Attributes) With(fragments ...string) Attributes {
	extra := make([]string, 0, len(a.Extra)+len(fragments))
	extra = append(extra, a.Extra...)
	extra = append(extra, fragments...)
	a.Extra = extra
	return a
}

// AssembleTag builds the complete textual form of one element.
// A non-empty attribute list is joined with single spaces and prefixed with
// one space; an empty list adds no whitespace. Content is ignored for the
// SelfClosing and OpenOnly shapes.
func AssembleTag(tag string, attrs []string, content string, shape TagShape) string {
	var b strings.Builder
	b.Grow(len(tag)*2 + len(content) + 16)

	b.WriteByte('<')
	b.WriteString(tag)
	if len(attrs) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(attrs, " "))
	}

	switch shape {
	case SelfClosing:
		b.WriteString(" />")
	case OpenOnly:
		b.WriteByte('>')
	default:
		b.WriteByte('>')
		b.WriteString(content)
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteByte('>')
	}
	return b.String()
}

// joinClasses joins non-empty class names with single spaces.
func joinClasses(classes []string) string {
	var parts []string
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
