package render

import (
	"slices"
	"strings"

	"github.com/alnah/go-md2html/typography"
)

// Variant selects the renderer flavor.
type Variant int

const (
	VariantBasic Variant = iota
	VariantEnhanced
)

func (v Variant) String() string {
	if v == VariantEnhanced {
		return "enhanced"
	}
	return "basic"
}

// HighlightMode controls syntax highlighting of code blocks.
type HighlightMode int

const (
	HighlightOff HighlightMode = iota
	HighlightSelected
	HighlightAll
)

// DefaultTOCMaxDepth is used when TOCOptions.MaxDepth is zero.
const DefaultTOCMaxDepth = 3

// RunnableLanguage is the only language that gets a run button.
const RunnableLanguage = "go"

// TOCOptions controls heading id and table-of-contents generation.
type TOCOptions struct {
	Enabled   bool
	MaxDepth  int
	AnchorIDs bool
}

func (t TOCOptions) maxDepth() int {
	if t.MaxDepth <= 0 {
		return DefaultTOCMaxDepth
	}
	return t.MaxDepth
}

// CodeOptions controls enhanced code block markup.
type CodeOptions struct {
	CopyButton  bool
	LineNumbers bool
	Filename    bool
	RunButton   bool
	Wrap        bool
}

// Options configures a renderer. Basic renderers only read Typography and
// Marks.
type Options struct {
	Highlight HighlightMode
	// Languages restricts highlighting when Highlight is HighlightSelected.
	// Names are matched after alias resolution.
	Languages  []string
	TOC        TOCOptions
	Code       CodeOptions
	Math       bool
	Marks      bool // ==text== as <mark>
	Typography *typography.Configuration
}

// DefaultOptions enables highlighting, heading ids, the copy button and
// filename display.
func DefaultOptions() Options {
	return Options{
		Highlight: HighlightAll,
		TOC:       TOCOptions{Enabled: true, MaxDepth: DefaultTOCMaxDepth, AnchorIDs: true},
		Code:      CodeOptions{CopyButton: true, Filename: true},
	}
}

func (o Options) highlights(lang string) bool {
	switch o.Highlight {
	case HighlightAll:
		return lang != ""
	case HighlightSelected:
		return lang != "" && slices.ContainsFunc(o.Languages, func(l string) bool {
			return NormalizeLanguage(l) == lang
		})
	default:
		return false
	}
}

var languageAliases = map[string]string{
	"js":      "javascript",
	"jsx":     "javascript",
	"ts":      "typescript",
	"tsx":     "typescript",
	"py":      "python",
	"python3": "python",
	"rb":      "ruby",
	"sh":      "bash",
	"shell":   "bash",
	"zsh":     "bash",
	"yml":     "yaml",
	"md":      "markdown",
	"golang":  "go",
	"rs":      "rust",
	"kt":      "kotlin",
	"cs":      "csharp",
	"c++":     "cpp",
	"objc":    "objective-c",
	"ps1":     "powershell",
	"tf":      "terraform",
	"htm":     "html",
}

// NormalizeLanguage lowercases a language tag and resolves aliases such as
// "js" to "javascript".
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if canonical, ok := languageAliases[lang]; ok {
		return canonical
	}
	return lang
}

// parseInfo splits a fenced block info string of the form "lang:filename".
// Attributes after the first space are ignored.
func parseInfo(info string) (lang, filename string) {
	info = strings.TrimSpace(info)
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		info = info[:i]
	}
	lang, filename, _ = strings.Cut(info, ":")
	return NormalizeLanguage(lang), strings.TrimSpace(filename)
}
