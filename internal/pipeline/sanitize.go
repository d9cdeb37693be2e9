package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from rendered fragments. Raw HTML in
// Markdown passes through the renderer unescaped; this is the trust
// boundary for untrusted input.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer built on the bluemonday UGC policy,
// extended with the classes, anchors and widgets the renderer emits.
// A Sanitizer is safe for concurrent use.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("role", "aria-label").Globally()
	p.AllowDataAttributes()
	p.AllowElements("mark", "nav", "header", "time", "button")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^(button|checkbox)$`)).OnElements("button", "input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	p.AllowElements("input")
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowStyles("text-align").MatchingEnum("left", "center", "right").OnElements("th", "td")
	return &Sanitizer{policy: p}
}

// Sanitize returns fragment with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
