package pipeline

import "regexp"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n. It is the only rewrite
// applied to Markdown source before parsing; code and raw HTML reach the
// renderer byte for byte.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
