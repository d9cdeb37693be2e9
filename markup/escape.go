package markup

import "strings"

// htmlEntities lists the escaped characters in application order.
// Ampersand comes first so the other entities are not escaped twice.
var htmlEntities = []struct {
	char   string
	entity string
}{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#39;"},
}

// EscapeHTML escapes the five HTML-significant characters.
// It is not idempotent: escaping an already escaped string escapes the
// ampersands of its entities again.
func EscapeHTML(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	for _, e := range htmlEntities {
		s = strings.ReplaceAll(s, e.char, e.entity)
	}
	return s
}
