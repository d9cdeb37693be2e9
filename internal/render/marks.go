package render

import "regexp"

// markPattern matches ==text== where the delimiters touch non-space
// characters, so comparisons such as "a == b" stay literal.
var markPattern = regexp.MustCompile(`==([^\s=](?:[^=\n]*[^\s=])?)==`)

// renderMarks turns ==text== spans of already escaped text into <mark>
// elements. Escaping never produces '=', so the spans survive it.
func renderMarks(escaped string) string {
	return markPattern.ReplaceAllString(escaped, "<mark>$1</mark>")
}

// stripMarks drops the ==delimiters== from plain text.
func stripMarks(s string) string {
	return markPattern.ReplaceAllString(s, "$1")
}
