package render

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used for token colors.
const DefaultHighlightStyle = "github"

// HighlightCSS returns the stylesheet for the token classes emitted by the
// enhanced renderer, scoped under .chroma. Unknown style names fall back
// to chroma's default style.
func HighlightCSS(styleName string) (string, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, styles.Get(styleName)); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}
